package smooth

import (
	"fmt"
	"time"

	"github.com/gogpu/smooth/internal/filter"
)

// Input pattern written across the flat input buffer.
const (
	patternEven uint8 = 10
	patternOdd  uint8 = 8
)

// Result describes a completed benchmark run.
type Result struct {
	Width      int
	Height     int
	Iterations int

	// KernelSize is the side length of the kernel; Kernel holds its
	// unnormalized weights row by row.
	KernelSize int
	Kernel     []float32

	// Scale is 1/sum(Kernel).
	Scale float64

	// Wall is the elapsed time of the whole loop. CPU is the process CPU
	// time over the same loop, or Wall where CPU time is unavailable.
	Wall time.Duration
	CPU  time.Duration

	// Samples holds the wall time of each iteration.
	Samples []time.Duration

	// Output is the smoothed image, row-major.
	Output []uint8
}

// Pixels returns the number of output samples computed per iteration.
func (r *Result) Pixels() int {
	return r.Width * r.Height
}

// Run generates the input image and kernel, convolves the image
// Iterations times back to back, and writes the timing report.
func Run(opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	in := filter.NewView(o.width, o.height)
	out := filter.NewView(o.width, o.height)
	fillAlternating(in.Pix, patternEven, patternOdd)

	k, err := o.kernel()
	if err != nil {
		return nil, err
	}
	scale := k.Scale()
	ext := filter.FullExtent(in)

	Logger().Debug("smooth: buffers allocated",
		"width", in.Width, "height", in.Height,
		"strides", []int{in.StrideX, in.StrideY, in.StrideZ},
		"extent", ext.String(),
		"kernel", k.Size)

	w := o.out
	printBanner(w)
	printHeader(w, o.width, o.height, k.Size, scale)
	if o.verbose {
		printView(w, "Input matrix", in)
		printKernel(w, k)
	}

	Logger().Info("smooth: run started", "iterations", o.iterations)

	samples := make([]time.Duration, 0, o.iterations)
	cpuStart, cpuOK := processCPUTime()
	start := time.Now()
	for i := 0; i < o.iterations; i++ {
		iterStart := time.Now()
		if err := filter.Convolve(in, out, 0, ext, k, scale); err != nil {
			return nil, fmt.Errorf("smooth: iteration %d: %w", i, err)
		}
		samples = append(samples, time.Since(iterStart))
	}
	wall := time.Since(start)
	cpuStop, _ := processCPUTime()

	cpu := wall
	if cpuOK {
		cpu = cpuStop - cpuStart
	}

	res := &Result{
		Width:      o.width,
		Height:     o.height,
		Iterations: o.iterations,
		KernelSize: k.Size,
		Kernel:     k.Weights,
		Scale:      scale,
		Wall:       wall,
		CPU:        cpu,
		Samples:    samples,
		Output:     out.Pix,
	}

	Logger().Info("smooth: run complete", "wall", wall, "cpu", cpu)

	printTiming(w, res)
	if o.verbose {
		printView(w, "Output matrix", out)
	}

	return res, nil
}

// kernel builds the configured kernel.
func (o *options) kernel() (filter.Kernel, error) {
	if o.kernelWeights != nil {
		k, err := filter.NewKernel(o.kernelWeights, o.kernelSize)
		if err != nil {
			return filter.Kernel{}, fmt.Errorf("smooth: %w", err)
		}
		return k, nil
	}
	k, err := filter.GaussianKernel(o.radius)
	if err != nil {
		return filter.Kernel{}, fmt.Errorf("smooth: %w", err)
	}
	return k, nil
}

// fillAlternating writes a, b, a, b, ... across pix.
func fillAlternating(pix []uint8, a, b uint8) {
	for i := range pix {
		if i&1 == 0 {
			pix[i] = a
		} else {
			pix[i] = b
		}
	}
}
