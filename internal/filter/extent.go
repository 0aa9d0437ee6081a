package filter

import "fmt"

// Extent is an axis-aligned region of a view with inclusive bounds on
// each axis.
type Extent struct {
	XMin, XMax int
	YMin, YMax int
	ZMin, ZMax int
}

// FullExtent returns the extent covering plane 0 of v.
func FullExtent(v View) Extent {
	return Extent{
		XMin: 0, XMax: v.Width - 1,
		YMin: 0, YMax: v.Height - 1,
		ZMin: 0, ZMax: 0,
	}
}

// Width returns the number of columns in the extent.
func (e Extent) Width() int {
	return e.XMax - e.XMin + 1
}

// Height returns the number of rows in the extent.
func (e Extent) Height() int {
	return e.YMax - e.YMin + 1
}

// Empty reports whether the extent contains no samples.
func (e Extent) Empty() bool {
	return e.XMax < e.XMin || e.YMax < e.YMin || e.ZMax < e.ZMin
}

// Pixels returns the number of samples in one plane of the extent.
func (e Extent) Pixels() int {
	if e.Empty() {
		return 0
	}
	return e.Width() * e.Height()
}

// Within checks that every sample of the extent is addressable in v.
func (e Extent) Within(v View) error {
	if e.XMin < 0 || e.YMin < 0 || e.ZMin < 0 ||
		e.XMax >= v.Width || e.YMax >= v.Height || e.ZMax >= v.Depth {
		return fmt.Errorf("%w: %+v in %dx%dx%d view", ErrExtentOutOfBounds, e, v.Width, v.Height, v.Depth)
	}
	return nil
}

// String implements fmt.Stringer.
func (e Extent) String() string {
	return fmt.Sprintf("[%d..%d, %d..%d, %d..%d]", e.XMin, e.XMax, e.YMin, e.YMax, e.ZMin, e.ZMax)
}
