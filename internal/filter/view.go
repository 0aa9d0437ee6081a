package filter

import (
	"fmt"
	"image"
)

// View addresses an 8-bit sample buffer as a three-dimensional grid.
//
// The sample at (x, y, z) lives at Pix[x*StrideX + y*StrideY + z*StrideZ].
// Input and output buffers of a convolution may use different strides.
type View struct {
	Pix []uint8

	Width  int
	Height int
	Depth  int

	StrideX int
	StrideY int
	StrideZ int
}

// NewView allocates a single-plane, row-major view of width×height samples.
func NewView(width, height int) View {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return View{
		Pix:     make([]uint8, width*height),
		Width:   width,
		Height:  height,
		Depth:   1,
		StrideX: 1,
		StrideY: width,
		StrideZ: 0,
	}
}

// Offset returns the index into Pix of the sample at (x, y, z).
// It does not check bounds.
func (v View) Offset(x, y, z int) int {
	return x*v.StrideX + y*v.StrideY + z*v.StrideZ
}

// Contains reports whether (x, y, z) lies inside the view.
func (v View) Contains(x, y, z int) bool {
	return x >= 0 && x < v.Width &&
		y >= 0 && y < v.Height &&
		z >= 0 && z < v.Depth
}

// At returns the sample at (x, y, z), or 0 outside the view.
func (v View) At(x, y, z int) uint8 {
	if !v.Contains(x, y, z) {
		return 0
	}
	i := v.Offset(x, y, z)
	if i < 0 || i >= len(v.Pix) {
		return 0
	}
	return v.Pix[i]
}

// Set stores a sample at (x, y, z). Writes outside the view are ignored.
func (v View) Set(x, y, z int, val uint8) {
	if !v.Contains(x, y, z) {
		return
	}
	i := v.Offset(x, y, z)
	if i < 0 || i >= len(v.Pix) {
		return
	}
	v.Pix[i] = val
}

// Fill sets every sample of the underlying buffer to val.
func (v View) Fill(val uint8) {
	for i := range v.Pix {
		v.Pix[i] = val
	}
}

// Validate checks that every addressable sample lies inside Pix.
func (v View) Validate() error {
	if v.Width <= 0 || v.Height <= 0 || v.Depth <= 0 {
		return fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidView, v.Width, v.Height, v.Depth)
	}
	if v.StrideX < 0 || v.StrideY < 0 || v.StrideZ < 0 {
		return fmt.Errorf("%w: negative stride (%d,%d,%d)", ErrInvalidView, v.StrideX, v.StrideY, v.StrideZ)
	}
	last := v.Offset(v.Width-1, v.Height-1, v.Depth-1)
	if last >= len(v.Pix) {
		return fmt.Errorf("%w: offset %d exceeds buffer of %d", ErrInvalidView, last, len(v.Pix))
	}
	return nil
}

// Gray returns plane 0 as an *image.Gray.
// Packed row-major views share their buffer with the returned image;
// other layouts are copied.
func (v View) Gray() *image.Gray {
	rect := image.Rect(0, 0, v.Width, v.Height)
	if v.StrideX == 1 && v.StrideY >= v.Width && v.Validate() == nil {
		return &image.Gray{
			Pix:    v.Pix[:v.Offset(v.Width-1, v.Height-1, 0)+1],
			Stride: v.StrideY,
			Rect:   rect,
		}
	}

	img := image.NewGray(rect)
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			img.Pix[y*img.Stride+x] = v.At(x, y, 0)
		}
	}
	return img
}
