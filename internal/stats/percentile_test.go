package stats

import (
	"errors"
	"testing"
)

func TestPercentileNearestRank(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{"p50 of four samples", 50, 20}, // ceil(0.50*4)-1 = 1
		{"p90 of four samples", 90, 40}, // ceil(0.90*4)-1 = 3
		{"p95 of four samples", 95, 40},
		{"p99 of four samples", 99, 40},
		{"p25 rounds up to first rank", 25, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentile(sorted, tt.p); got != tt.expected {
				t.Errorf("Percentile(%v, %v) = %v, want %v", sorted, tt.p, got, tt.expected)
			}
		})
	}
}

func TestPercentileSingleSample(t *testing.T) {
	sorted := []float64{12.5}
	for _, p := range []float64{50, 90, 95, 99} {
		if got := Percentile(sorted, p); got != 12.5 {
			t.Errorf("Percentile p%v = %v, want 12.5", p, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	// Arrival order is not sorted; Summarize must not depend on it
	samples := []float64{30, 10, 40, 20}

	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.SampleCount != 4 {
		t.Errorf("SampleCount = %d, want 4", summary.SampleCount)
	}
	if summary.MinRTT != 10 || summary.MaxRTT != 40 {
		t.Errorf("Min/Max = %v/%v, want 10/40", summary.MinRTT, summary.MaxRTT)
	}
	if summary.AvgRTT != 25 {
		t.Errorf("AvgRTT = %v, want 25", summary.AvgRTT)
	}
	if summary.P50 != 20 {
		t.Errorf("P50 = %v, want 20", summary.P50)
	}
	if summary.P90 != 40 || summary.P95 != 40 || summary.P99 != 40 {
		t.Errorf("P90/P95/P99 = %v/%v/%v, want 40/40/40", summary.P90, summary.P95, summary.P99)
	}

	// Input must stay in arrival order
	if samples[0] != 30 {
		t.Errorf("Summarize mutated its input: %v", samples)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	samples := []float64{5.1, 3.2, 9.9, 7.7, 1.0, 4.4, 8.8, 2.2, 6.6, 5.5}

	first, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	second, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize failed on second pass: %v", err)
	}

	if first != second {
		t.Errorf("Summarize not idempotent: %+v vs %+v", first, second)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrNoSamples) {
		t.Errorf("Summarize(nil) error = %v, want ErrNoSamples", err)
	}
}
