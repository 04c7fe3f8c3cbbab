package adapters

import "github.com/de-tools/bureau-dashboard/pkg/models/api"

const (
	ColourSuccess = "#22c55e"
	ColourAccent  = "#3b82f6"
	ColourWarning = "#f87171"
	ColourNeutral = "#94a3b8"
	ColourAmber   = "#f59e0b"
)

// Single-series fills.
const (
	fillBuckets      = "#4f46e5"
	fillAccountTypes = "#06b6d4"
	fillRepayment    = "#7c3aed"
	fillVelocity     = "#059669"
	fillTiming       = "#0d9488"
)

var (
	lenderPalette        = []string{"#6366f1", "#8b5cf6", "#ec4899", "#14b8a6"}
	productMixPalette    = []string{"#0ea5e9", "#84cc16", "#64748b"}
	riskTierPalette      = []string{"#ef4444", "#f59e0b", "#22c55e"}
	affordabilityPalette = []string{"#94a3b8", "#38bdf8", "#a78bfa", "#f472b6"}
	cohortPalette        = []string{ColourSuccess, ColourAccent, ColourAmber, ColourNeutral}
	samPalette           = []string{ColourSuccess, ColourAccent, ColourAmber, ColourNeutral}
	anchorPalette        = []string{ColourSuccess, ColourAccent, ColourWarning, ColourAmber}
)

// cycle picks colours by position, wrapping around short palettes.
func cycle(palette []string) func(int) string {
	return func(i int) string {
		if len(palette) == 0 {
			return ""
		}
		return palette[i%len(palette)]
	}
}

func solid(colour string) func(int) string {
	return func(int) string { return colour }
}

// mapCategories converts an upstream distribution into chart points, keeping
// the producer's order.
func mapCategories[T any](items []T, entry func(T) (string, int64), colour func(int) string) []api.CategoryPoint {
	points := make([]api.CategoryPoint, 0, len(items))
	for i, item := range items {
		category, count := entry(item)
		points = append(points, api.CategoryPoint{
			Category: category,
			Count:    count,
			Colour:   colour(i),
		})
	}
	return points
}

func total(points []api.CategoryPoint) int64 {
	var sum int64
	for _, p := range points {
		sum += p.Count
	}
	return sum
}

// withShares fills in each point's percentage of the distribution total.
func withShares(points []api.CategoryPoint) []api.CategoryPoint {
	sum := total(points)
	if sum == 0 {
		return points
	}
	for i := range points {
		share := roundTo2(100 * float64(points[i].Count) / float64(sum))
		points[i].Percentage = &share
	}
	return points
}
