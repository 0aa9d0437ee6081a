package smooth

import (
	"fmt"
	"io"
	"os"
)

// Default benchmark parameters.
const (
	DefaultWidth      = 2000
	DefaultHeight     = 2000
	DefaultIterations = 10
	DefaultRadius     = 3
)

// Option configures a benchmark run.
//
// Example:
//
//	// The fixed benchmark
//	res, err := smooth.Run()
//
//	// A small run with matrices printed
//	res, err := smooth.Run(smooth.WithSize(8, 8), smooth.WithVerbose(true))
type Option func(*options)

// options holds the configuration of a run.
type options struct {
	width      int
	height     int
	iterations int
	radius     float64

	// kernel overrides the generated Gaussian when set.
	kernelWeights []float32
	kernelSize    int

	out     io.Writer
	verbose bool
}

// defaultOptions returns the fixed benchmark configuration.
func defaultOptions() options {
	return options{
		width:      DefaultWidth,
		height:     DefaultHeight,
		iterations: DefaultIterations,
		radius:     DefaultRadius,
		out:        os.Stdout,
		verbose:    debugMatrices,
	}
}

// WithSize sets the image dimensions.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithIterations sets how many times the convolution runs inside the timed loop.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithRadius sets the Gaussian kernel radius. It is truncated to an integer.
func WithRadius(radius float64) Option {
	return func(o *options) {
		o.radius = radius
	}
}

// WithKernel replaces the Gaussian with hand-built row-major weights of
// side size. The scale is still 1/sum(weights).
func WithKernel(weights []float32, size int) Option {
	return func(o *options) {
		o.kernelWeights = weights
		o.kernelSize = size
	}
}

// WithOutput sets the writer for the report. Nil discards the report.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithVerbose enables printing of the input, kernel and output matrices.
// The default comes from the smoothdebug build tag.
// Use a small image; every sample is printed.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// validate checks option values that Run cannot recover from.
func (o *options) validate() error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOption, o.width, o.height)
	}
	if o.iterations <= 0 {
		return fmt.Errorf("%w: %d iterations", ErrInvalidOption, o.iterations)
	}
	if o.out == nil {
		o.out = io.Discard
	}
	return nil
}
