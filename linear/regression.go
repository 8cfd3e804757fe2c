package linear

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/gdlearn/gdlearn/core/linalg"
	"github.com/gdlearn/gdlearn/core/model"
	"github.com/gdlearn/gdlearn/metrics"
	"github.com/gdlearn/gdlearn/pkg/errors"
	"github.com/gdlearn/gdlearn/pkg/log"
)

const modelName = "LinearRegression"

// Regression は全バッチ勾配降下法で学習する線形回帰モデル。
// 切片項は持たないため、必要なら呼び出し側が定数列を data に加える。
// 正規化も行わない。
//
// 同一インスタンスに対する Train の並行呼び出しは未定義。
type Regression struct {
	data        linalg.Matrix // (n_samples, n_features)
	labels      linalg.Matrix // (n_samples, 1)
	nFeatures   int
	theta       linalg.Matrix // (n_features, 1)
	costHistory []float64

	backend linalg.Backend
	logger  log.Logger
	state   *model.StateManager
}

var _ model.Regressor = (*Regression)(nil)

// NewRegression は学習データを保持し、パラメータをゼロで初期化したモデルを返す。
// 入力の検証は行わず、行数の不一致は最初の行列積で ShapeMismatchError として現れる。
func NewRegression(data linalg.Matrix, labels []float64, opts ...Option) *Regression {
	r := &Regression{
		backend: linalg.NewGonum(),
		state:   model.NewStateManager(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.GetLogger()
	}
	r.logger = r.logger.With(log.ModelNameKey, modelName, log.ComponentKey, "linear")

	nSamples, nFeatures := data.Dims()
	r.data = data
	r.labels = r.backend.Column(labels)
	r.nFeatures = nFeatures
	r.theta = r.backend.Zeros(nFeatures, 1)
	r.state.SetDimensions(nFeatures, nSamples)
	return r
}

// Predict は X·theta を (n_samples, 1) の列で返す。モデルの状態は変更しない。
func (r *Regression) Predict(X linalg.Matrix) (pred linalg.Matrix, err error) {
	defer errors.Recover(&err, modelName+".Predict")
	return r.backend.Mul(X, r.theta)
}

// residual は data·theta − labels を返す
func (r *Regression) residual() (linalg.Matrix, error) {
	pred, err := r.backend.Mul(r.data, r.theta)
	if err != nil {
		return nil, err
	}
	return r.backend.Sub(pred, r.labels)
}

// ComputeCost は学習データに対する平均二乗誤差 mean((data·theta − labels)²) を返す
func (r *Regression) ComputeCost() (cost float64, err error) {
	defer errors.Recover(&err, modelName+".ComputeCost")
	e, err := r.residual()
	if err != nil {
		return 0, err
	}
	return r.backend.Mean(r.backend.Square(e)), nil
}

// GradientStep はパラメータを一度だけ更新する。
//
//	theta ← theta − alpha · (1/n) · dataᵀ · (data·theta − labels)
//
// alpha は検証しない。失敗した場合 theta は変更されない。
func (r *Regression) GradientStep(alpha float64) (err error) {
	defer errors.Recover(&err, modelName+".GradientStep")

	n, _ := r.data.Dims()
	if n == 0 {
		return errors.Wrap(errors.ErrEmptyData, modelName+".GradientStep")
	}

	e, err := r.residual()
	if err != nil {
		return err
	}
	grad, err := r.backend.Mul(r.backend.T(r.data), e)
	if err != nil {
		return err
	}
	grad = r.backend.Scale(1/float64(n), grad)

	theta, err := r.backend.Sub(r.theta, r.backend.Scale(alpha, grad))
	if err != nil {
		return err
	}
	r.theta = theta
	return nil
}

// Train は指定回数だけ勾配ステップを実行し、各ステップの後にコストを履歴へ追加する。
// 早期終了はない。繰り返し呼び出すと theta と履歴は累積する。
//
// verbose の場合、reportEvery イテレーションごと（0 から）に進捗を Info で出力する。
// コストが増加した場合は ConvergenceWarning を、NaN/Inf になった場合は
// NumericalInstabilityError を警告として発生させるが、学習は最後まで続ける。
func (r *Regression) Train(opts ...TrainOption) error {
	cfg := defaultTrainConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := r.logger.With(log.OperationKey, log.OperationTrain, log.PhaseKey, log.PhaseTraining)
	start := time.Now()
	first := len(r.costHistory)

	done := 0
	for i := 0; i < cfg.iterations; i++ {
		if err := r.GradientStep(cfg.alpha); err != nil {
			r.state.MarkTrained(done)
			return errors.Wrapf(err, "%s.Train: iteration %d", modelName, i)
		}
		cost, err := r.ComputeCost()
		if err != nil {
			r.state.MarkTrained(done)
			return errors.Wrapf(err, "%s.Train: iteration %d", modelName, i)
		}
		r.costHistory = append(r.costHistory, cost)
		done++

		if cfg.verbose && i%cfg.reportEvery == 0 {
			logger.Info("gradient descent progress", log.IterationKey, i, log.LossKey, cost)
		}
	}
	r.state.MarkTrained(done)

	r.warnOnDivergence(first)

	if len(r.costHistory) > 0 {
		logger.Debug("training finished",
			log.IterationsKey, cfg.iterations,
			log.HistoryLenKey, len(r.costHistory),
			log.LearningRateKey, cfg.alpha,
			log.LossKey, r.costHistory[len(r.costHistory)-1],
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return nil
}

// warnOnDivergence は history[first:] を調べ、最初のコスト増加と最初の非有限値について警告する。
// first > 0 の場合は前回の Train の最後の値とも比較する。
func (r *Regression) warnOnDivergence(first int) {
	h := r.costHistory
	from := first
	if from == 0 {
		from = 1
	}
	for i := from; i < len(h); i++ {
		if h[i] > h[i-1] {
			errors.Warn(errors.NewConvergenceWarning(modelName, len(h),
				fmt.Sprintf("cost increased from %g to %g at iteration %d; consider lowering the learning rate", h[i-1], h[i], i)))
			break
		}
	}
	for i := first; i < len(h); i++ {
		if err := errors.CheckScalar("compute_cost", h[i], i); err != nil {
			errors.Warn(err)
			break
		}
	}
}

// Score は X に対する予測と y の決定係数 R² を返す
func (r *Regression) Score(X linalg.Matrix, y []float64) (float64, error) {
	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(toVec(y), toVec(linalg.Col(pred, 0)))
}

func toVec(v []float64) *mat.VecDense {
	if len(v) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(v), v)
}

// Theta は現在のパラメータのコピーを返す
func (r *Regression) Theta() []float64 {
	return linalg.Col(r.theta, 0)
}

// CostHistory はコスト履歴のコピーを返す
func (r *Regression) CostHistory() []float64 {
	out := make([]float64, len(r.costHistory))
	copy(out, r.costHistory)
	return out
}

// NFeatures は特徴量の数を返す
func (r *Regression) NFeatures() int { return r.nFeatures }

// NIterations はこれまでに完了したイテレーション数の累計を返す
func (r *Regression) NIterations() int { return r.state.Iterations() }

// IsTrained は一度でも Train が呼ばれたかどうかを返す
func (r *Regression) IsTrained() bool { return r.state.IsTrained() }

// State はデバッグ用に学習状態をまとめて返す
func (r *Regression) State() model.Snapshot { return r.state.Snapshot() }
