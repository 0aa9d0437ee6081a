// Package filter implements the 2D Gaussian smoothing kernel used by the
// smooth benchmark.
//
// The package contains:
//   - GaussianKernel: unnormalized square Gaussian weights (sigma 0.2 in
//     normalized coordinates, sparse below 0.0005)
//   - View: an 8-bit sample buffer addressed through explicit x/y/z strides
//   - Extent: the inclusive region a convolution processes
//   - Convolve: clamp-to-edge 2D convolution of one plane
//
// All operations are single-threaded and allocation-free on the hot path.
// Callers normalize results by passing Kernel.Scale to Convolve.
package filter
