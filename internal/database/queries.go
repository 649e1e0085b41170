package database

import (
	"fmt"

	"pingstats/internal/models"
)

// SaveRun persists one completed run with its summary and raw samples
func (db *DB) SaveRun(result models.RunResult, summary models.Summary) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction failed: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
        INSERT INTO runs (timestamp, target, requested, sent, received,
            min_rtt_ms, avg_rtt_ms, max_rtt_ms,
            p50_rtt_ms, p90_rtt_ms, p95_rtt_ms, p99_rtt_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		result.Timestamp,
		result.Target,
		result.Count,
		result.Sent,
		result.Received,
		summary.MinRTT,
		summary.AvgRTT,
		summary.MaxRTT,
		summary.P50,
		summary.P90,
		summary.P95,
		summary.P99,
	)
	if err != nil {
		return fmt.Errorf("run insert failed: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id lookup failed: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO run_samples (run_id, seq, rtt_ms) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sample insert prepare failed: %w", err)
	}
	defer stmt.Close()

	for i, rtt := range result.Samples {
		if _, err := stmt.Exec(runID, i, rtt); err != nil {
			return fmt.Errorf("sample insert failed: %w", err)
		}
	}

	return tx.Commit()
}

// RecentRuns retrieves the most recent stored runs, newest first
func (db *DB) RecentRuns(limit int) ([]models.StoredRun, error) {
	rows, err := db.Query(`
        SELECT id, timestamp, target, requested, sent, received,
            min_rtt_ms, avg_rtt_ms, max_rtt_ms,
            p50_rtt_ms, p90_rtt_ms, p95_rtt_ms, p99_rtt_ms
        FROM runs
        ORDER BY timestamp DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.StoredRun
	for rows.Next() {
		var r models.StoredRun
		err := rows.Scan(&r.ID, &r.Timestamp, &r.Target, &r.Count, &r.Sent, &r.Received,
			&r.MinRTT, &r.AvgRTT, &r.MaxRTT,
			&r.P50, &r.P90, &r.P95, &r.P99)
		if err != nil {
			continue
		}
		r.SampleCount = r.Received
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// RunSamples retrieves the raw samples of one stored run in arrival order
func (db *DB) RunSamples(runID int64) ([]float64, error) {
	rows, err := db.Query(`SELECT rtt_ms FROM run_samples WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []float64
	for rows.Next() {
		var rtt float64
		if err := rows.Scan(&rtt); err != nil {
			continue
		}
		samples = append(samples, rtt)
	}

	return samples, rows.Err()
}
