//go:build smoothdebug

package smooth

// debugMatrices enables matrix printing by default.
// Build with -tags smoothdebug and a small image; every sample is printed.
const debugMatrices = true
