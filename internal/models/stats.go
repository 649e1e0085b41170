package models

import "time"

// Summary represents order statistics computed over one run's samples
type Summary struct {
	SampleCount int     `json:"sample_count"`
	MinRTT      float64 `json:"min_rtt"`
	AvgRTT      float64 `json:"avg_rtt"`
	MaxRTT      float64 `json:"max_rtt"`
	P50         float64 `json:"p50_rtt"`
	P90         float64 `json:"p90_rtt"`
	P95         float64 `json:"p95_rtt"`
	P99         float64 `json:"p99_rtt"`
}

// StoredRun is a persisted run with its summary, as read back from history
type StoredRun struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target"`
	Count     int       `json:"count"`
	Sent      int       `json:"sent"`
	Received  int       `json:"received"`
	Summary
}
