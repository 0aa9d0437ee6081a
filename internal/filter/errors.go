package filter

import "errors"

// Package errors for filter.
var (
	// ErrNegativeRadius is returned when a kernel radius is negative or NaN.
	ErrNegativeRadius = errors.New("filter: negative kernel radius")

	// ErrKernelShape is returned when the weight count does not match size*size.
	ErrKernelShape = errors.New("filter: kernel weights do not match size")

	// ErrEvenKernelSize is returned by Convolve for kernels without a center cell.
	ErrEvenKernelSize = errors.New("filter: convolution kernel size not odd")

	// ErrInvalidView is returned when a view's dimensions or strides do not fit its buffer.
	ErrInvalidView = errors.New("filter: invalid view")

	// ErrExtentOutOfBounds is returned when an extent reaches outside a view.
	ErrExtentOutOfBounds = errors.New("filter: extent out of bounds")

	// ErrPlaneOutOfRange is returned when the z plane lies outside the extent or view.
	ErrPlaneOutOfRange = errors.New("filter: plane out of range")
)
