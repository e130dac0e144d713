package main

import (
	"fmt"
	"io"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"
)

// Worker sizing bounds for auto mode.
const (
	minWorkers = 1
	maxWorkers = 16
)

// configureMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(w io.Writer, verbose bool) {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

// resolvePoolSize determines how many renders run at once.
// Priority: explicit value > GOMAXPROCS-based calculation.
// Rendering is CPU-bound, so auto mode uses one worker per available CPU.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
