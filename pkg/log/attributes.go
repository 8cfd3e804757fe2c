// Package log defines standard attribute keys for machine learning operations.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "training.iteration") so that log lines can be filtered and aggregated
// by category.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model emitting the record.
	// Examples: "LinearRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values are the Operation* constants below.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "metrics"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Training progress and performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the cost value during training or evaluation.
	LossKey = "metrics.loss"

	// IterationKey records the current iteration index (0-based).
	IterationKey = "training.iteration"

	// IterationsKey records the number of iterations requested for a run.
	IterationsKey = "training.iterations"

	// HistoryLenKey records the total length of the cost history.
	HistoryLenKey = "training.history_len"

	// LearningRateKey records the learning rate (alpha) of gradient descent.
	LearningRateKey = "hyperparams.learning_rate"
)

// Error and Warning Context
const (
	// ErrorTypeKey categorizes the type of error or warning encountered.
	// Examples: "ConvergenceWarning", "ShapeMismatchError"
	ErrorTypeKey = "error.type"

	// WarningKey carries a structured warning object.
	WarningKey = "warning"
)

// Standard attribute values.
const (
	OperationTrain        = "train"
	OperationGradientStep = "gradient_step"
	OperationComputeCost  = "compute_cost"
	OperationPredict      = "predict"
	OperationScore        = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"
)
