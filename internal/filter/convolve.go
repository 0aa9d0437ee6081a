package filter

import "fmt"

// Convolve applies kernel k to plane z of in over the region ext and writes
// the result to the same locations in out.
//
// For each (x, y) in ext the weighted sum of the kernel footprint is taken,
// with neighbor coordinates clamped to the edge: coordinates at or below 0
// read 0, coordinates past ext.XMax (ext.YMax) read that bound. The output
// sample is scale*sum rounded toward zero and truncated to 8 bits.
//
// Kernel weights are walked row by row, so the kernel is applied as a
// correlation. in and k are not modified.
//
// k must have an odd size. Even kernels have no center cell; Convolve logs
// a warning and returns ErrEvenKernelSize without writing to out.
func Convolve(in, out View, z int, ext Extent, k Kernel, scale float64) error {
	if err := k.validate(); err != nil {
		return err
	}
	if k.Size&1 != 1 {
		slogger().Warn("filter: convolution kernel size not odd", "size", k.Size)
		return fmt.Errorf("%w: size %d", ErrEvenKernelSize, k.Size)
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if ext.Empty() {
		return nil
	}
	if err := ext.Within(in); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := ext.Within(out); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if z < ext.ZMin || z > ext.ZMax {
		return fmt.Errorf("%w: z=%d not in %d..%d", ErrPlaneOutOfRange, z, ext.ZMin, ext.ZMax)
	}

	half := k.Size / 2
	width, height := ext.XMax, ext.YMax
	inPlane := z * in.StrideZ
	weights := k.Weights

	for y := ext.YMin; y <= ext.YMax; y++ {
		for x := ext.XMin; x <= ext.XMax; x++ {
			var sum float64
			i := 0

			for v := -half; v <= half; v++ {
				row := inPlane + clampEdge(y+v, height)*in.StrideY
				for u := -half; u <= half; u++ {
					val := in.Pix[row+clampEdge(x+u, width)*in.StrideX]
					sum += float64(float32(val) * weights[i])
					i++
				}
			}

			out.Pix[out.Offset(x, y, z)] = truncUint8(scale * sum)
		}
	}

	return nil
}

// clampEdge clamps a neighbor coordinate to [0, bound].
func clampEdge(c, bound int) int {
	if c <= 0 {
		return 0
	}
	if c > bound {
		return bound
	}
	return c
}

// truncUint8 rounds v toward zero and keeps the low 8 bits.
func truncUint8(v float64) uint8 {
	return uint8(int64(v))
}
