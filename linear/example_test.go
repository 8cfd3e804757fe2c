package linear_test

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/gdlearn/gdlearn/linear"
	"github.com/gdlearn/gdlearn/pkg/log"
)

func ExampleRegression_Train() {
	// y = 2x
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := []float64{2, 4, 6}

	r := linear.NewRegression(X, y, linear.WithLogger(log.NewZerologLogger(io.Discard, log.LevelError)))
	if err := r.Train(linear.WithLearningRate(0.1), linear.WithIterations(100)); err != nil {
		fmt.Println(err)
		return
	}

	cost, _ := r.ComputeCost()
	fmt.Printf("theta: %.3f\n", r.Theta()[0])
	fmt.Printf("cost: %.4f\n", cost)
	fmt.Println("history:", len(r.CostHistory()))
	// Output:
	// theta: 2.000
	// cost: 0.0000
	// history: 100
}
