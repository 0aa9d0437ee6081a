package smooth

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/smooth/internal/filter"
)

func TestRunSmallImage(t *testing.T) {
	var buf bytes.Buffer
	res, err := Run(WithSize(16, 16), WithIterations(3), WithOutput(&buf))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Width != 16 || res.Height != 16 {
		t.Errorf("Run() size = %dx%d, want 16x16", res.Width, res.Height)
	}
	if res.KernelSize != 7 || len(res.Kernel) != 49 {
		t.Errorf("Run() kernel = %d (%d cells), want 7 (49 cells)", res.KernelSize, len(res.Kernel))
	}
	if len(res.Samples) != 3 {
		t.Errorf("len(Samples) = %d, want 3", len(res.Samples))
	}
	if len(res.Output) != 16*16 {
		t.Fatalf("len(Output) = %d, want %d", len(res.Output), 16*16)
	}
	if res.Wall <= 0 {
		t.Errorf("Wall = %v, want > 0", res.Wall)
	}
	if res.CPU < 0 {
		t.Errorf("CPU = %v, want >= 0", res.CPU)
	}

	// A weighted average of 8s and 10s.
	for i, v := range res.Output {
		if v < patternOdd || v > patternEven {
			t.Fatalf("Output[%d] = %d, want in [%d, %d]", i, v, patternOdd, patternEven)
		}
	}
}

func TestRunScaleIsReciprocalOfKernelSum(t *testing.T) {
	res, err := Run(WithSize(8, 8), WithIterations(1), WithOutput(nil))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	k, err := filter.GaussianKernel(DefaultRadius)
	if err != nil {
		t.Fatalf("GaussianKernel() error = %v", err)
	}
	if want := 1.0 / k.Sum(); res.Scale != want {
		t.Errorf("Scale = %v, want %v", res.Scale, want)
	}

	var sum float64
	for _, w := range res.Kernel {
		sum += float64(w)
	}
	if math.Abs(res.Scale*sum-1) > 1e-9 {
		t.Errorf("Scale*sum = %v, want 1", res.Scale*sum)
	}
}

func TestRunCenterTapReproducesInput(t *testing.T) {
	center := []float32{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	res, err := Run(WithSize(6, 5), WithKernel(center, 3), WithIterations(1), WithOutput(nil))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := make([]uint8, 6*5)
	fillAlternating(want, patternEven, patternOdd)
	if !bytes.Equal(res.Output, want) {
		t.Errorf("Output = %v, want %v", res.Output, want)
	}
}

func TestRunEvenKernel(t *testing.T) {
	_, err := Run(WithSize(4, 4), WithKernel([]float32{1, 1, 1, 1}, 2), WithOutput(nil))
	if !errors.Is(err, filter.ErrEvenKernelSize) {
		t.Errorf("Run() error = %v, want ErrEvenKernelSize", err)
	}
}

func TestRunInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero width", []Option{WithSize(0, 10)}, ErrInvalidOption},
		{"negative height", []Option{WithSize(10, -1)}, ErrInvalidOption},
		{"zero iterations", []Option{WithIterations(0)}, ErrInvalidOption},
		{"negative radius", []Option{WithSize(4, 4), WithRadius(-2)}, filter.ErrNegativeRadius},
		{"kernel shape", []Option{WithSize(4, 4), WithKernel([]float32{1, 2, 3}, 3)}, filter.ErrKernelShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithOutput(nil)}, tt.opts...)
			_, err := Run(opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunReport(t *testing.T) {
	var buf bytes.Buffer
	res, err := Run(WithSize(12, 10), WithIterations(2), WithOutput(&buf))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Smooth program\n",
		"Input matrix size is 12 by 10\n",
		"Kernel size is 7\n",
		fmt.Sprintf("Scale is %3.2f\n", res.Scale),
		"Clock time for smooth operation",
		"Wall time for smooth operation",
		"Per iteration: mean",
		"OS/Arch:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Input matrix:") {
		t.Error("matrices printed without verbose")
	}
}

func TestRunVerbose(t *testing.T) {
	var buf bytes.Buffer
	_, err := Run(WithSize(4, 2), WithRadius(1), WithIterations(1), WithVerbose(true), WithOutput(&buf))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Input matrix:\n10 8 10 8 \n10 8 10 8 \n",
		"Kernel:\n",
		"1.0000",
		"Output matrix:\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose report missing %q:\n%s", want, out)
		}
	}
}

func TestFillAlternating(t *testing.T) {
	tests := []struct {
		n    int
		want []uint8
	}{
		{0, []uint8{}},
		{1, []uint8{10}},
		{4, []uint8{10, 8, 10, 8}},
		{5, []uint8{10, 8, 10, 8, 10}},
	}

	for _, tt := range tests {
		got := make([]uint8, tt.n)
		fillAlternating(got, patternEven, patternOdd)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("fillAlternating(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.width != 2000 || o.height != 2000 {
		t.Errorf("default size = %dx%d, want 2000x2000", o.width, o.height)
	}
	if o.iterations != 10 {
		t.Errorf("default iterations = %d, want 10", o.iterations)
	}
	if o.radius != 3 {
		t.Errorf("default radius = %v, want 3", o.radius)
	}
	if o.out == nil {
		t.Error("default output is nil")
	}
	if o.verbose != debugMatrices {
		t.Errorf("default verbose = %v, want %v", o.verbose, debugMatrices)
	}
}

func TestProcessCPUTime(t *testing.T) {
	d, ok := processCPUTime()
	if ok && d < 0 {
		t.Errorf("processCPUTime() = %v, want >= 0", d)
	}
}

// BenchmarkRun measures the whole harness on a 512x512 image.
func BenchmarkRun(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Run(WithSize(512, 512), WithIterations(1), WithOutput(nil)); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(512 * 512)
}
