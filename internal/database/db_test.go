package database

import (
	"path/filepath"
	"testing"
	"time"

	"pingstats/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

func TestSaveAndLoadRun(t *testing.T) {
	db := newTestDB(t)

	result := models.RunResult{
		Timestamp: time.Now().UTC(),
		Target:    "8.8.8.8",
		Count:     20,
		Sent:      20,
		Received:  18,
		Samples:   []float64{10, 20, 30, 40},
	}
	summary := models.Summary{
		SampleCount: 4,
		MinRTT:      10, AvgRTT: 25, MaxRTT: 40,
		P50: 20, P90: 40, P95: 40, P99: 40,
	}

	if err := db.SaveRun(result, summary); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.Target != "8.8.8.8" {
		t.Errorf("Target = %q, want 8.8.8.8", r.Target)
	}
	if r.Count != 20 || r.Sent != 20 || r.Received != 18 {
		t.Errorf("counts = %d/%d/%d, want 20/20/18", r.Count, r.Sent, r.Received)
	}
	if r.P50 != 20 || r.P90 != 40 {
		t.Errorf("p50/p90 = %v/%v, want 20/40", r.P50, r.P90)
	}
	if r.Timestamp.IsZero() {
		t.Error("Timestamp not persisted")
	}

	samples, err := db.RunSamples(r.ID)
	if err != nil {
		t.Fatalf("RunSamples failed: %v", err)
	}
	want := []float64{10, 20, 30, 40}
	if len(samples) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(samples))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	db := newTestDB(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		result := models.RunResult{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Target:    "1.1.1.1",
			Count:     10, Sent: 10, Received: 10,
			Samples: []float64{float64(i + 1)},
		}
		if err := db.SaveRun(result, models.Summary{SampleCount: 1}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	runs, err := db.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].Timestamp.After(runs[1].Timestamp) {
		t.Errorf("runs not ordered newest first: %v, %v", runs[0].Timestamp, runs[1].Timestamp)
	}
}

func TestPruneOldRuns(t *testing.T) {
	db := newTestDB(t)

	old := models.RunResult{
		Timestamp: time.Now().UTC().AddDate(0, 0, -120),
		Target:    "8.8.8.8",
		Count:     10, Sent: 10, Received: 10,
		Samples: []float64{5},
	}
	recent := models.RunResult{
		Timestamp: time.Now().UTC(),
		Target:    "8.8.8.8",
		Count:     10, Sent: 10, Received: 10,
		Samples: []float64{6},
	}
	for _, r := range []models.RunResult{old, recent} {
		if err := db.SaveRun(r, models.Summary{SampleCount: 1}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	if err := db.PruneOldRuns(); err != nil {
		t.Fatalf("PruneOldRuns failed: %v", err)
	}

	runs, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run after prune, got %d", len(runs))
	}
}
