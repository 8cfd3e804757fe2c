package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gdlearn/gdlearn/core/parallel"
	"github.com/gdlearn/gdlearn/pkg/errors"
)

// ParallelThreshold 以上のペア数を集計する場合、ワーカーごとに行列を作って並列に数え、最後に合算する。
// 結果は逐次集計と同一。
const ParallelThreshold = 1 << 14

// ConfusionMatrix は混同行列。行が真のクラス、列が予測クラス。
// 二値の場合のレイアウトは [[tp, fn], [fp, tn]]。
type ConfusionMatrix [][]int

func newConfusionMatrix(n int) ConfusionMatrix {
	cm := make(ConfusionMatrix, n)
	cells := make([]int, n*n)
	for i := range cm {
		cm[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}
	return cm
}

func (cm ConfusionMatrix) add(other ConfusionMatrix) {
	for i := range cm {
		for j := range cm[i] {
			cm[i][j] += other[i][j]
		}
	}
}

// Total は集計されたペアの総数を返す
func (cm ConfusionMatrix) Total() int {
	total := 0
	for _, row := range cm {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Accuracy は対角成分の割合を返す。ペアが一つもない場合は0を返し、UndefinedMetricWarning を発生させる。
func (cm ConfusionMatrix) Accuracy() float64 {
	total := cm.Total()
	if total == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("accuracy", "no samples", 0))
		return 0
	}
	correct := 0
	for i := range cm {
		correct += cm[i][i]
	}
	return float64(correct) / float64(total)
}

// tabulate は n 個のペアを size×size の行列に集計する。cell は i 番目のペアの (行, 列) を返す。
func tabulate(size, n int, cell func(i int) (row, col int)) ConfusionMatrix {
	return parallel.MapReduce(n, ParallelThreshold,
		func(start, end int) ConfusionMatrix {
			cm := newConfusionMatrix(size)
			for i := start; i < end; i++ {
				r, c := cell(i)
				cm[r][c]++
			}
			return cm
		},
		func(acc, part ConfusionMatrix) ConfusionMatrix {
			acc.add(part)
			return acc
		})
}

// binaryCell は (1,1) を tp、(1,0) を fn、(0,1) を fp に割り当て、それ以外のペアはすべて tn として数える
func binaryCell(t, p float64) (row, col int) {
	switch {
	case t == 1 && p == 1:
		return 0, 0
	case t == 1 && p == 0:
		return 0, 1
	case t == 0 && p == 1:
		return 1, 0
	default:
		return 1, 1
	}
}

// BinaryConfusionMatrix は0/1ラベルの二値混同行列 [[tp, fn], [fp, tn]] を返す。
// 長さが異なる場合は短い方に合わせて先頭から比較し、エラーにはしない。
func BinaryConfusionMatrix(yTrue, yPred []int) ConfusionMatrix {
	n := min(len(yTrue), len(yPred))
	return tabulate(2, n, func(i int) (int, int) {
		return binaryCell(float64(yTrue[i]), float64(yPred[i]))
	})
}

// BinaryConfusionMatrixVec は BinaryConfusionMatrix の gonum ベクトル版
func BinaryConfusionMatrixVec(yTrue, yPred mat.Vector) ConfusionMatrix {
	n := min(yTrue.Len(), yPred.Len())
	return tabulate(2, n, func(i int) (int, int) {
		return binaryCell(yTrue.AtVec(i), yPred.AtVec(i))
	})
}

// ClassIndex はクラスラベルから行列の添字への順序付きの対応表
type ClassIndex[T comparable] struct {
	classes []T
	index   map[T]int
}

// NewClassIndex は classes の順序で添字を割り当てる。重複したクラスは InvalidInputError になる。
func NewClassIndex[T comparable](classes []T) (*ClassIndex[T], error) {
	idx := &ClassIndex[T]{
		classes: make([]T, len(classes)),
		index:   make(map[T]int, len(classes)),
	}
	copy(idx.classes, classes)
	for i, c := range classes {
		if _, dup := idx.index[c]; dup {
			return nil, errors.NewInvalidInputError("NewClassIndex", "duplicate class", c)
		}
		idx.index[c] = i
	}
	return idx, nil
}

// Index は label の添字を返す。未知のラベルなら false。
func (c *ClassIndex[T]) Index(label T) (int, bool) {
	i, ok := c.index[label]
	return i, ok
}

// Len はクラス数を返す
func (c *ClassIndex[T]) Len() int { return len(c.classes) }

// Classes はクラスの一覧を添字順のコピーで返す
func (c *ClassIndex[T]) Classes() []T {
	out := make([]T, len(c.classes))
	copy(out, c.classes)
	return out
}

// MultiClassConfusionMatrix は classes の順序で N×N の混同行列を返す。
// 長さの不一致、classes にないラベル、重複したクラスは InvalidInputError になり、途中の結果は返さない。
func MultiClassConfusionMatrix[T comparable](yTrue, yPred, classes []T) (ConfusionMatrix, error) {
	const op = "MultiClassConfusionMatrix"

	if len(yTrue) != len(yPred) {
		return nil, errors.NewInvalidInputError(op, "y_true and y_pred must have the same length",
			[]int{len(yTrue), len(yPred)})
	}

	idx, err := NewClassIndex(classes)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	rows := make([]int, len(yTrue))
	cols := make([]int, len(yPred))
	for i := range yTrue {
		r, ok := idx.Index(yTrue[i])
		if !ok {
			return nil, errors.NewInvalidInputError(op, "label in y_true not found in classes", yTrue[i])
		}
		c, ok := idx.Index(yPred[i])
		if !ok {
			return nil, errors.NewInvalidInputError(op, "label in y_pred not found in classes", yPred[i])
		}
		rows[i], cols[i] = r, c
	}

	return tabulate(idx.Len(), len(rows), func(i int) (int, int) {
		return rows[i], cols[i]
	}), nil
}

// binaryCounts は2×2の混同行列から tp, fn, fp を取り出す
func binaryCounts(op string, cm ConfusionMatrix) (tp, fn, fp int, err error) {
	if len(cm) != 2 || len(cm[0]) != 2 || len(cm[1]) != 2 {
		return 0, 0, 0, errors.NewInvalidInputError(op, "binary metric requires a 2x2 confusion matrix", len(cm))
	}
	return cm[0][0], cm[0][1], cm[1][0], nil
}

// ratio は分母が0の場合に0を返し、UndefinedMetricWarning を発生させる
func ratio(metric, condition string, num, den int) float64 {
	if den == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(metric, condition, 0))
		return 0
	}
	return float64(num) / float64(den)
}

// Precision は適合率 tp / (tp + fp) を返す
func Precision(cm ConfusionMatrix) (float64, error) {
	tp, _, fp, err := binaryCounts("Precision", cm)
	if err != nil {
		return 0, err
	}
	return ratio("precision", "no predicted samples", tp, tp+fp), nil
}

// Recall は再現率 tp / (tp + fn) を返す
func Recall(cm ConfusionMatrix) (float64, error) {
	tp, fn, _, err := binaryCounts("Recall", cm)
	if err != nil {
		return 0, err
	}
	return ratio("recall", "no true samples", tp, tp+fn), nil
}

// F1Score は適合率と再現率の調和平均 2tp / (2tp + fp + fn) を返す
func F1Score(cm ConfusionMatrix) (float64, error) {
	tp, fn, fp, err := binaryCounts("F1Score", cm)
	if err != nil {
		return 0, err
	}
	return ratio("f1", "no true nor predicted samples", 2*tp, 2*tp+fp+fn), nil
}
