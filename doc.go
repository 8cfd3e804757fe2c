// Package gdlearn provides two small building blocks for supervised learning
// in Go: confusion-matrix tabulation for evaluating classifiers, and a linear
// regression model trained by full-batch gradient descent.
//
// # Installation
//
//	go get github.com/gdlearn/gdlearn
//
// # Quick Start
//
// Training a linear regression model:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/gdlearn/gdlearn/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // y = 2x; add a constant column for an intercept
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := []float64{2, 4, 6, 8}
//
//	    model := linear.NewRegression(X, y)
//	    if err := model.Train(
//	        linear.WithLearningRate(0.05),
//	        linear.WithIterations(500),
//	        linear.WithVerbose(true),
//	    ); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(mat.NewDense(2, 1, []float64{5, 6}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(pred.(mat.Matrix)))
//	}
//
// Evaluating a classifier:
//
//	cm := metrics.BinaryConfusionMatrix(yTrue, yPred) // [[tp, fn], [fp, tn]]
//	p, _ := metrics.Precision(cm)
//
//	cm, err := metrics.MultiClassConfusionMatrix(yTrue, yPred, []string{"cat", "dog"})
//
// # Packages
//
//   - linear: gradient-descent linear regression (Regression)
//   - metrics: confusion matrices, classification and regression scores
//   - core/linalg: linear-algebra interface and its gonum implementation
//   - core/model: training state and model interfaces
//   - core/parallel: chunked parallel processing
//   - pkg/errors: typed errors and warnings
//   - pkg/log: structured logging
//
// # Errors and Warnings
//
// Errors carry stack traces (github.com/cockroachdb/errors) and are matched
// with errors.As:
//
//	var shapeErr *errors.ShapeMismatchError
//	if errors.As(err, &shapeErr) { ... }
//
// Advisory conditions such as a rising cost during training or an undefined
// precision are reported as warnings through pkg/log rather than returned.
package gdlearn
