package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gdlearn/gdlearn/pkg/errors"
)

// Gonum implements Backend with gonum.org/v1/gonum/mat. Results are
// *mat.Dense; inputs that already implement mat.Matrix are used without
// copying.
type Gonum struct{}

// NewGonum returns the gonum-backed Backend.
func NewGonum() Gonum { return Gonum{} }

var _ Backend = Gonum{}

func (Gonum) Zeros(r, c int) Matrix {
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(r, c, nil)
}

func (Gonum) Column(v []float64) Matrix {
	if len(v) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(v))
	copy(data, v)
	return mat.NewDense(len(v), 1, data)
}

func (Gonum) Mul(a, b Matrix) (Matrix, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, errors.NewShapeMismatchError("Mul", []int{ac, bc}, []int{br, bc})
	}
	if ar == 0 || bc == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(ar, bc, nil)
	if ac == 0 {
		return out, nil
	}
	out.Mul(asMat(a), asMat(b))
	return out, nil
}

func (Gonum) T(a Matrix) Matrix {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	return mat.DenseCopyOf(asMat(a).T())
}

func (Gonum) Sub(a, b Matrix) (Matrix, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, errors.NewShapeMismatchError("Sub", []int{ar, ac}, []int{br, bc})
	}
	if ar == 0 || ac == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(ar, ac, nil)
	out.Sub(asMat(a), asMat(b))
	return out, nil
}

func (Gonum) Scale(f float64, a Matrix) Matrix {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(r, c, nil)
	out.Scale(f, asMat(a))
	return out
}

func (Gonum) Square(a Matrix) Matrix {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	m := asMat(a)
	out := mat.NewDense(r, c, nil)
	out.MulElem(m, m)
	return out
}

func (Gonum) Mean(a Matrix) float64 {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return math.NaN()
	}
	return mat.Sum(asMat(a)) / float64(r*c)
}

// asMat returns a as a mat.Matrix, copying only when a comes from outside gonum.
func asMat(a Matrix) mat.Matrix {
	if m, ok := a.(mat.Matrix); ok {
		return m
	}
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}
	return out
}
