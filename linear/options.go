package linear

import (
	"github.com/gdlearn/gdlearn/core/linalg"
	"github.com/gdlearn/gdlearn/pkg/log"
)

// Option configures a Regression at construction.
type Option func(*Regression)

// WithBackend sets the linear-algebra backend. A nil backend is ignored.
func WithBackend(b linalg.Backend) Option {
	return func(r *Regression) {
		if b != nil {
			r.backend = b
		}
	}
}

// WithLogger sets the logger used for training progress and summaries.
// Model attributes are added on top of l.
func WithLogger(l log.Logger) Option {
	return func(r *Regression) {
		if l != nil {
			r.logger = l
		}
	}
}

// Default training hyperparameters.
const (
	DefaultLearningRate = 0.01
	DefaultIterations   = 500
	DefaultReportEvery  = 100
)

type trainConfig struct {
	alpha       float64
	iterations  int
	verbose     bool
	reportEvery int
}

func defaultTrainConfig() trainConfig {
	return trainConfig{
		alpha:       DefaultLearningRate,
		iterations:  DefaultIterations,
		reportEvery: DefaultReportEvery,
	}
}

// TrainOption configures a single call to Train.
type TrainOption func(*trainConfig)

// WithLearningRate sets the step size alpha. It is not validated.
func WithLearningRate(alpha float64) TrainOption {
	return func(c *trainConfig) {
		c.alpha = alpha
	}
}

// WithIterations sets the number of gradient steps. Non-positive values run no steps.
func WithIterations(n int) TrainOption {
	return func(c *trainConfig) {
		c.iterations = n
	}
}

// WithVerbose enables progress records at Info level.
func WithVerbose(verbose bool) TrainOption {
	return func(c *trainConfig) {
		c.verbose = verbose
	}
}

// WithReportEvery sets how often verbose progress is reported. Values below 1 are ignored.
func WithReportEvery(n int) TrainOption {
	return func(c *trainConfig) {
		if n > 0 {
			c.reportEvery = n
		}
	}
}
