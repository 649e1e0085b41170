package models

import "context"

// Database interface defines operations for run-history persistence
type Database interface {
	SaveRun(result RunResult, summary Summary) error
	RecentRuns(limit int) ([]StoredRun, error)
	PruneOldRuns() error
	Close() error
}

// Prober interface defines probe execution operations
type Prober interface {
	Run(ctx context.Context, cfg RunConfig) (RunResult, error)
}
