package model

import "github.com/gdlearn/gdlearn/core/linalg"

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を (n_samples, 1) の列で返す
	Predict(X linalg.Matrix) (linalg.Matrix, error)
}

// Trainer は構築時に与えられたデータで反復学習するモデルのインターフェース
type Trainer interface {
	// GradientStep はパラメータを一度だけ更新する
	GradientStep(alpha float64) error
	// ComputeCost は現在のパラメータでの学習データに対するコストを返す
	ComputeCost() (float64, error)
	// IsTrained は一度でも学習したかどうかを返す
	IsTrained() bool
}

// Scorer はスコアを計算できるモデルのインターフェース
type Scorer interface {
	// Score は予測の決定係数 R² を返す
	Score(X linalg.Matrix, y []float64) (float64, error)
}

// Regressor は回帰モデルが満たすインターフェースの組み合わせ
type Regressor interface {
	Predictor
	Trainer
	Scorer
}
