package main

import "runtime"

// MaxWorkers caps --workers.
const MaxWorkers = 64

// resolveWorkers determines the worker count.
// Priority: explicit flag > GOMAXPROCS.
func resolveWorkers(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	// One worker per processor (GOMAXPROCS is adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
