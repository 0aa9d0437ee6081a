// Package smooth benchmarks a 2D Gaussian smoothing kernel on an 8-bit image.
//
// # Overview
//
// Run builds one synthetic single-channel image, one Gaussian kernel, and
// convolves the image a fixed number of times back to back, reporting the
// elapsed CPU and wall time of the loop:
//
//	res, err := smooth.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.CPU)
//
// The defaults reproduce the fixed benchmark: a 2000×2000 image filled with
// the alternating pattern 10, 8, 10, 8, ..., a kernel of radius 3 (7×7),
// and 10 iterations.
//
// # Kernel
//
// The kernel is evaluated on normalized coordinates spanning [-0.5, 0.5]
// with a standard deviation of 0.2. Weights are not normalized; the
// convolution is scaled by 1/sum(weights).
//
// # Boundaries
//
// Neighbors outside the processed region are clamped to its edge. There is
// no wrap-around and no zero padding.
//
// # Debug output
//
// Building with -tags smoothdebug prints the input, kernel and output
// matrices. Use WithSize to shrink the image first.
package smooth
