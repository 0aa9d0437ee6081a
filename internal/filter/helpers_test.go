package filter

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

// Test helper functions shared across filter tests.

// createUniformView creates a w×h view with every sample set to val.
func createUniformView(w, h int, val uint8) View {
	v := NewView(w, h)
	draw.Draw(v.Gray(), image.Rect(0, 0, w, h), image.NewUniform(color.Gray{Y: val}), image.Point{}, draw.Src)
	return v
}

// createImpulseView creates a w×h black view with a single sample set to val.
func createImpulseView(w, h, x, y int, val uint8) View {
	v := createUniformView(w, h, 0)
	draw.Draw(v.Gray(), image.Rect(x, y, x+1, y+1), image.NewUniform(color.Gray{Y: val}), image.Point{}, draw.Src)
	return v
}

// createGradientView creates a view whose samples vary along both axes.
func createGradientView(w, h int) View {
	v := NewView(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v.Set(x, y, 0, uint8((x*37+y*91+(x*y)%53)%256))
		}
	}
	return v
}

// mustGaussian returns GaussianKernel(radius) or fails the test.
func mustGaussian(t testing.TB, radius float64) Kernel {
	t.Helper()
	k, err := GaussianKernel(radius)
	if err != nil {
		t.Fatalf("GaussianKernel(%v) error = %v", radius, err)
	}
	return k
}

// absDiff returns |a-b| for samples.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
