// Command smooth runs the 2D Gaussian smoothing benchmark.
//
// It takes no flags: the image size, kernel radius and iteration count are
// fixed. Build with -tags smoothdebug to print the matrices.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/smooth"
)

func main() {
	smooth.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if _, err := smooth.Run(smooth.WithOutput(os.Stdout)); err != nil {
		log.Fatalf("smooth: %v", err)
	}
}
