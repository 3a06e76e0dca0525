package main

import "runtime"

// Worker sizing constants.
const (
	// minWorkers ensures at least one render proceeds.
	minWorkers = 1

	// maxWorkers caps auto-sized concurrency; explicit --workers may exceed it.
	maxWorkers = 8

	// cpuDivisor leaves headroom for serialization and file I/O.
	cpuDivisor = 2
)

// resolveWorkers determines the concurrency limit.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers int) int {
	// Explicit flag takes priority
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
