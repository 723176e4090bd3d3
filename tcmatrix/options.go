package tcmatrix

import (
	"runtime"

	"github.com/rmera/tcint/threec"
	"go.uber.org/zap"
)

// Options contains the settings for Fill and Orthogonalize.
type Options struct {
	accuracy float64
	eps      float64
	cpus     int
	logger   *zap.Logger
}

// DefaultOptions returns options with the default screening accuracy, all
// the logical CPUs and a logger that discards everything.
func DefaultOptions() *Options {
	r := new(Options)
	r.accuracy = threec.DefaultAccuracy
	r.eps = 1e-8
	r.cpus = runtime.NumCPU()
	r.logger = zap.NewNop()
	return r
}

// Accuracy returns the screening accuracy for the integrals,
// and sets it to a new value, if given.
func (O *Options) Accuracy(acc ...float64) float64 {
	if len(acc) > 0 && acc[0] > 0 {
		O.accuracy = acc[0]
	}
	return O.accuracy
}

// Eps returns the smallest eigenvalue of the auxiliary metric that
// is kept when the metric is inverted, and sets it to a new value, if given.
func (O *Options) Eps(eps ...float64) float64 {
	if len(eps) > 0 && eps[0] >= 0 {
		O.eps = eps[0]
	}
	return O.eps
}

// Cpus returns the number of goroutines to be used,
// and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

// Logger returns the logger in use, and sets it to a new one, if given.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}
