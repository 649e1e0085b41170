package stats

import (
	"errors"
	"math"
	"sort"

	"pingstats/internal/models"
)

// ErrNoSamples is returned when a run produced no parseable round-trip times
var ErrNoSamples = errors.New("no samples collected, cannot compute statistics")

// Percentile returns the nearest-rank percentile of an ascending-sorted
// slice: the value at rank ceil(p/100 * N), 1-based. Not interpolated.
func Percentile(sorted []float64, p float64) float64 {
	idx := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// Summarize computes order statistics over the collected samples.
// The input is not modified; sorting happens on a copy.
func Summarize(samples []float64) (models.Summary, error) {
	if len(samples) == 0 {
		return models.Summary{}, ErrNoSamples
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return models.Summary{
		SampleCount: len(sorted),
		MinRTT:      sorted[0],
		AvgRTT:      sum / float64(len(sorted)),
		MaxRTT:      sorted[len(sorted)-1],
		P50:         Percentile(sorted, 50),
		P90:         Percentile(sorted, 90),
		P95:         Percentile(sorted, 95),
		P99:         Percentile(sorted, 99),
	}, nil
}
