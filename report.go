package smooth

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/smooth/internal/filter"
)

// printBanner writes the host description.
func printBanner(w io.Writer) {
	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		brand = "unknown"
	}
	fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CPU: %s (%d logical cores)\n", brand, cpuid.CPU.LogicalCores)
	fmt.Fprintf(w, "\n")
}

// printHeader writes the fixed-format run description.
func printHeader(w io.Writer, width, height, kernelSize int, scale float64) {
	fmt.Fprintf(w, "Smooth program\n")
	fmt.Fprintf(w, "Input matrix size is %d by %d\n", width, height)
	fmt.Fprintf(w, "Kernel size is %d\n", kernelSize)
	fmt.Fprintf(w, "Scale is %3.2f\n", scale)
}

// printTiming writes the elapsed times of the iteration loop.
func printTiming(w io.Writer, r *Result) {
	fmt.Fprintf(w, "\nClock time for smooth operation %6.1f seconds\n\n", r.CPU.Seconds())
	fmt.Fprintf(w, "Wall time for smooth operation %6.3f seconds\n", r.Wall.Seconds())

	mean, std := sampleStats(r.Samples)
	fmt.Fprintf(w, "Per iteration: mean %.3f ms, stddev %.3f ms\n", mean, std)

	if r.Wall > 0 {
		rate := float64(r.Pixels()) * float64(r.Iterations) / r.Wall.Seconds()
		p := message.NewPrinter(language.English)
		p.Fprintf(w, "Throughput: %d pixels/s\n", int64(rate))
	}
}

// sampleStats returns the mean and standard deviation of samples in milliseconds.
func sampleStats(samples []time.Duration) (mean, std float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	ms := make([]float64, len(samples))
	for i, s := range samples {
		ms[i] = float64(s) / float64(time.Millisecond)
	}
	if len(ms) == 1 {
		return ms[0], 0
	}
	return stat.MeanStdDev(ms, nil)
}

// printView writes plane 0 of v, one row per line.
func printView(w io.Writer, title string, v filter.View) {
	fmt.Fprintf(w, "%s:\n", title)
	var b strings.Builder
	for y := 0; y < v.Height; y++ {
		b.Reset()
		for x := 0; x < v.Width; x++ {
			b.WriteString(strconv.Itoa(int(v.At(x, y, 0))))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		io.WriteString(w, b.String())
	}
}

// printKernel writes the kernel weights with four decimals.
func printKernel(w io.Writer, k filter.Kernel) {
	fmt.Fprintf(w, "Kernel:\n")
	fmt.Fprintf(w, "%6.4f\n", mat.Formatted(k.Dense(), mat.Squeeze()))
}
