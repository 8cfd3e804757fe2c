package linalg

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/gdlearn/gdlearn/pkg/errors"
)

// rowMajor is a Matrix that does not implement mat.Matrix.
type rowMajor struct {
	r, c int
	data []float64
}

func (m rowMajor) Dims() (int, int)    { return m.r, m.c }
func (m rowMajor) At(i, j int) float64 { return m.data[i*m.c+j] }

func equalMatrix(t *testing.T, got Matrix, want [][]float64) {
	t.Helper()
	r, c := got.Dims()
	if r != len(want) {
		t.Fatalf("rows = %d, want %d", r, len(want))
	}
	for i := range want {
		if c != len(want[i]) {
			t.Fatalf("cols = %d, want %d", c, len(want[i]))
		}
		for j := range want[i] {
			if math.Abs(got.At(i, j)-want[i][j]) > 1e-12 {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got.At(i, j), want[i][j])
			}
		}
	}
}

func TestGonumMul(t *testing.T) {
	b := NewGonum()
	tests := []struct {
		name    string
		a, b    Matrix
		want    [][]float64
		wantErr bool
	}{
		{
			name: "matrix by column",
			a:    mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			b:    mat.NewDense(2, 1, []float64{1, 1}),
			want: [][]float64{{3}, {7}},
		},
		{
			name: "foreign matrix type",
			a:    rowMajor{r: 1, c: 3, data: []float64{1, 2, 3}},
			b:    mat.NewDense(3, 1, []float64{2, 2, 2}),
			want: [][]float64{{12}},
		},
		{
			name:    "inner dimension mismatch",
			a:       mat.NewDense(2, 3, nil),
			b:       mat.NewDense(2, 1, nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Mul(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Mul() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var shapeErr *errors.ShapeMismatchError
				if !errors.As(err, &shapeErr) {
					t.Errorf("Mul() error type = %T, want *ShapeMismatchError", err)
				}
				return
			}
			equalMatrix(t, got, tt.want)
		})
	}
}

func TestGonumSub(t *testing.T) {
	b := NewGonum()

	got, err := b.Sub(mat.NewDense(2, 1, []float64{5, 3}), b.Column([]float64{1, 4}))
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	equalMatrix(t, got, [][]float64{{4}, {-1}})

	_, err = b.Sub(mat.NewDense(2, 1, nil), mat.NewDense(3, 1, nil))
	var shapeErr *errors.ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Sub() error = %v, want *ShapeMismatchError", err)
	}
	if shapeErr.Op != "Sub" {
		t.Errorf("Op = %q, want %q", shapeErr.Op, "Sub")
	}
}

func TestGonumElementwise(t *testing.T) {
	b := NewGonum()
	a := mat.NewDense(2, 2, []float64{1, -2, 3, 4})

	equalMatrix(t, b.T(a), [][]float64{{1, 3}, {-2, 4}})
	equalMatrix(t, b.Scale(0.5, a), [][]float64{{0.5, -1}, {1.5, 2}})
	equalMatrix(t, b.Square(a), [][]float64{{1, 4}, {9, 16}})
	equalMatrix(t, b.Zeros(2, 3), [][]float64{{0, 0, 0}, {0, 0, 0}})

	if got := b.Mean(a); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("Mean() = %v, want 1.5", got)
	}
	// inputs are never mutated
	equalMatrix(t, a, [][]float64{{1, -2}, {3, 4}})
}

func TestGonumEmpty(t *testing.T) {
	b := NewGonum()

	if got := b.Mean(b.Zeros(0, 0)); !math.IsNaN(got) {
		t.Errorf("Mean(empty) = %v, want NaN", got)
	}
	if r, c := b.Column(nil).Dims(); r != 0 || c != 0 {
		t.Errorf("Column(nil) dims = (%d,%d), want (0,0)", r, c)
	}
}

func TestGonumColumnCopies(t *testing.T) {
	b := NewGonum()
	v := []float64{1, 2, 3}
	col := b.Column(v)
	v[0] = 100

	if got := col.At(0, 0); got != 1 {
		t.Errorf("Column shares caller memory: At(0,0) = %v", got)
	}
}

func TestCol(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	got := Col(m, 1)
	want := []float64{2, 4, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Col()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if s := Shape(m); s[0] != 3 || s[1] != 2 {
		t.Errorf("Shape() = %v, want [3 2]", s)
	}
}
