package memoir

import "runtime"

// Worker bounds for batch rendering.
const (
	MinWorkers = 1
	MaxWorkers = 8
	cpuDivisor = 2 // Leave headroom for the PDF writer and the OS
)

// ResolveWorkers returns how many documents to render concurrently.
// An explicit positive value is used as is up to MaxWorkers; otherwise half
// of GOMAXPROCS. The result is always within [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0) / cpuDivisor
	}
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
