//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris || aix)

package smooth

import "time"

// processCPUTime is unavailable here; Run reports wall time instead.
func processCPUTime() (time.Duration, bool) {
	return 0, false
}
