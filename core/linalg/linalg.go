// Package linalg defines the linear-algebra operations the gradient-descent
// core depends on, so that training code never calls a numeric library
// directly.
//
// Backend implementations must return a ShapeMismatchError from
// github.com/gdlearn/gdlearn/pkg/errors when operand shapes are
// incompatible, and must not mutate their inputs.
package linalg

// Matrix is a read-only 2-D numeric array. Any gonum mat.Matrix satisfies it.
type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (r, c int)
	// At returns the element at row i, column j.
	At(i, j int) float64
}

// Backend provides the operations used by hypothesis, cost and gradient
// computations.
type Backend interface {
	// Zeros returns an r×c matrix of zeros.
	Zeros(r, c int) Matrix
	// Column returns v as a len(v)×1 column vector.
	Column(v []float64) Matrix
	// Mul returns the matrix product a·b.
	Mul(a, b Matrix) (Matrix, error)
	// T returns the transpose of a.
	T(a Matrix) Matrix
	// Sub returns the elementwise difference a−b.
	Sub(a, b Matrix) (Matrix, error)
	// Scale returns f·a.
	Scale(f float64, a Matrix) Matrix
	// Square returns a with every element squared.
	Square(a Matrix) Matrix
	// Mean returns the mean of all elements, NaN for an empty matrix.
	Mean(a Matrix) float64
}

// Col copies column j of m into a new slice.
func Col(m Matrix, j int) []float64 {
	r, _ := m.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.At(i, j)
	}
	return out
}

// Shape returns the dimensions of m as a slice, the form used in shape errors.
func Shape(m Matrix) []int {
	r, c := m.Dims()
	return []int{r, c}
}
