// Package adapters shapes the batch job's documents into the series, scales and
// bucket layouts each dashboard chart needs. Every function here is pure: no
// I/O, and the same document always yields the same view.
package adapters

import "math"

// Golden window: months since the vehicle loan that convert best.
const (
	GoldenWindowFrom = 2
	GoldenWindowTo   = 10
)

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
