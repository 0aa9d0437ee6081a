package filter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// Sigma is the standard deviation of the Gaussian in normalized
	// kernel coordinates, where the kernel spans [-0.5, 0.5] on each axis.
	Sigma = 0.2

	// SparseThreshold is the smallest weight kept by GaussianKernel.
	// Smaller weights are stored as exactly 0.
	SparseThreshold = 0.0005
)

// Kernel is a square, row-major matrix of convolution weights.
//
// Weights are not normalized. Callers scale the convolution result by
// Scale, the reciprocal of the weight total.
type Kernel struct {
	// Weights holds Size*Size values, row by row.
	Weights []float32

	// Size is the side length of the kernel.
	Size int
}

// NewKernel wraps hand-built weights in a Kernel.
// It returns ErrKernelShape when len(weights) != size*size.
// Even sizes are accepted here; Convolve rejects them.
func NewKernel(weights []float32, size int) (Kernel, error) {
	if size <= 0 || len(weights) != size*size {
		return Kernel{}, fmt.Errorf("%w: %d weights for size %d", ErrKernelShape, len(weights), size)
	}
	return Kernel{Weights: weights, Size: size}, nil
}

// GaussianKernel generates a 2D Gaussian kernel for the given radius.
//
// The radius is truncated to an integer r and the kernel side length is
// 2r+1. Each cell (x, y) is evaluated at the normalized coordinates
// (x-r)/(2r) and (y-r)/(2r) with a fixed standard deviation of Sigma, so
// the center weight is exactly 1. Weights below SparseThreshold are set
// to 0. The kernel is not normalized; see Kernel.Scale.
//
// For r == 0 the identity kernel [1] is returned.
func GaussianKernel(radius float64) (Kernel, error) {
	if radius < 0 || math.IsNaN(radius) {
		return Kernel{}, fmt.Errorf("%w: %v", ErrNegativeRadius, radius)
	}

	r := int(radius)
	if r == 0 {
		return Kernel{Weights: []float32{1}, Size: 1}, nil
	}

	size := KernelSize(r)
	weights := make([]float32, size*size)

	span := float64(2 * r)
	sigmaSq := Sigma * Sigma

	for y := 0; y < size; y++ {
		dy := float64(y-r) / span
		for x := 0; x < size; x++ {
			dx := float64(x-r) / span
			v := math.Exp(-0.5 * (dx*dx + dy*dy) / sigmaSq)
			if v < SparseThreshold {
				v = 0
			}
			weights[y*size+x] = float32(v)
		}
	}

	return Kernel{Weights: weights, Size: size}, nil
}

// OnesKernel returns an unnormalized kernel of side 2*radius+1 with every
// weight set to 1. Convolving a uniform field with it, scaled by Scale,
// reproduces the field.
func OnesKernel(radius int) Kernel {
	if radius < 0 {
		radius = 0
	}
	size := KernelSize(radius)
	weights := make([]float32, size*size)
	for i := range weights {
		weights[i] = 1
	}
	return Kernel{Weights: weights, Size: size}
}

// KernelSize returns the side length of a kernel with the given radius.
func KernelSize(radius int) int {
	return radius*2 + 1
}

// Center returns the index of the center row and column.
func (k Kernel) Center() int {
	return k.Size / 2
}

// Len returns the number of cells in the kernel.
func (k Kernel) Len() int {
	return k.Size * k.Size
}

// At returns the weight at column x, row y.
func (k Kernel) At(x, y int) float32 {
	return k.Weights[y*k.Size+x]
}

// Sum returns the total of all weights, accumulated in float64.
func (k Kernel) Sum() float64 {
	return floats.Sum(k.float64s())
}

// Scale returns the normalization factor 1/Sum.
// A kernel whose weights sum to zero has scale 0.
func (k Kernel) Scale() float64 {
	sum := k.Sum()
	if sum == 0 {
		return 0
	}
	return 1.0 / sum
}

// Dense returns the weights as a Size×Size gonum matrix.
// The matrix holds a copy; modifying it does not change the kernel.
func (k Kernel) Dense() *mat.Dense {
	return mat.NewDense(k.Size, k.Size, k.float64s())
}

// validate checks that the weights match the declared size.
func (k Kernel) validate() error {
	if k.Size <= 0 || len(k.Weights) != k.Size*k.Size {
		return fmt.Errorf("%w: %d weights for size %d", ErrKernelShape, len(k.Weights), k.Size)
	}
	return nil
}

func (k Kernel) float64s() []float64 {
	out := make([]float64, len(k.Weights))
	for i, w := range k.Weights {
		out[i] = float64(w)
	}
	return out
}
