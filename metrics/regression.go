package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gdlearn/gdlearn/pkg/errors"
)

// pairedValues は2つのベクトルを検証し、要素をスライスとして取り出す
func pairedValues(op string, yTrue, yPred mat.Vector) (t, p []float64, err error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, nil, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return nil, nil, errors.NewShapeMismatchError(op, []int{n, 1}, []int{yPred.Len(), 1})
	}
	t = make([]float64, n)
	p = make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = yTrue.AtVec(i)
		p[i] = yPred.AtVec(i)
	}
	return t, p, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := pairedValues("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	d := floats.Distance(t, p, 2)
	return d * d / float64(len(t)), nil
}

// MSEMatrix は (n, 1) の列行列に対して MSE を計算する。
// 線形回帰の Predict の出力をそのまま渡せる。
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("MSEMatrix", "empty matrix")
	}
	if rTrue != rPred || cTrue != cPred {
		return 0, errors.NewShapeMismatchError("MSEMatrix", []int{rTrue, cTrue}, []int{rPred, cPred})
	}
	if cTrue != 1 {
		return 0, errors.NewValueError("MSEMatrix", "must be a column vector (n×1 matrix)")
	}

	return MSE(mat.NewVecDense(rTrue, mat.Col(nil, 0, yTrue)), mat.NewVecDense(rPred, mat.Col(nil, 0, yPred)))
}

// RMSE は平方根平均二乗誤差を計算する
func RMSE(yTrue, yPred mat.Vector) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差を計算する
func MAE(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := pairedValues("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return floats.Distance(t, p, 1) / float64(len(t)), nil
}

// R2Score は決定係数（R²）を計算する。
// yTrue の値がすべて等しい場合は全変動が0となり定義できないためエラーを返す。
func R2Score(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := pairedValues("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if floats.Max(t) == floats.Min(t) {
		return 0, errors.NewValueError("R2Score", "total sum of squares is zero (no variance in yTrue)")
	}
	return stat.RSquaredFrom(p, t, nil), nil
}
