// Package model はモデルのライフサイクル状態と共通インターフェースを提供します。
package model

import "sync"

// TrainingState はモデルの学習状態を表す
type TrainingState int

const (
	// Untrained はパラメータがゼロのまま一度も学習していない状態
	Untrained TrainingState = iota
	// Trained は少なくとも一度 Train が完了した状態
	Trained
)

func (s TrainingState) String() string {
	switch s {
	case Untrained:
		return "untrained"
	case Trained:
		return "trained"
	default:
		return "unknown"
	}
}

// StateManager はモデルの学習状態をスレッドセーフに管理します。
// 終端状態はなく、Trained からさらに学習を重ねても Trained のままです。
type StateManager struct {
	mu         sync.RWMutex
	state      TrainingState
	nFeatures  int
	nSamples   int
	iterations int
}

// NewStateManager は Untrained 状態の StateManager を作成します。
func NewStateManager() *StateManager {
	return &StateManager{state: Untrained}
}

// State は現在の学習状態を返す
func (s *StateManager) State() TrainingState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsTrained は一度でも学習が完了したかどうかを返す
func (s *StateManager) IsTrained() bool {
	return s.State() == Trained
}

// SetDimensions は学習データの特徴量数とサンプル数を記録する
func (s *StateManager) SetDimensions(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// Dimensions は記録された特徴量数とサンプル数を返す
func (s *StateManager) Dimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// MarkTrained は学習の完了を記録し、累積イテレーション数に n を加える。
// n が 0 でも状態は Trained になる。
func (s *StateManager) MarkTrained(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Trained
	if n > 0 {
		s.iterations += n
	}
}

// Iterations はこれまでに完了したイテレーションの累計を返す
func (s *StateManager) Iterations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.iterations
}

// Snapshot はデバッグやログ出力用の状態のコピーです。
type Snapshot struct {
	State      string `json:"state"`
	NFeatures  int    `json:"n_features"`
	NSamples   int    `json:"n_samples"`
	Iterations int    `json:"iterations"`
}

// Snapshot は現在の状態をまとめて返す
func (s *StateManager) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		State:      s.state.String(),
		NFeatures:  s.nFeatures,
		NSamples:   s.nSamples,
		Iterations: s.iterations,
	}
}
