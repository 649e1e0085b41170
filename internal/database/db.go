package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"pingstats/internal/models"
)

// DB wraps sql.DB with additional methods
type DB struct {
	*sql.DB
}

var _ models.Database = (*DB)(nil)

// New creates a new database connection
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Enable WAL mode for better concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	return &DB{db}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp DATETIME NOT NULL,
        target TEXT NOT NULL,
        requested INTEGER NOT NULL,
        sent INTEGER NOT NULL,
        received INTEGER NOT NULL,
        min_rtt_ms REAL,
        avg_rtt_ms REAL,
        max_rtt_ms REAL,
        p50_rtt_ms REAL,
        p90_rtt_ms REAL,
        p95_rtt_ms REAL,
        p99_rtt_ms REAL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
    CREATE INDEX IF NOT EXISTS idx_runs_target_timestamp ON runs(target, timestamp);

    CREATE TABLE IF NOT EXISTS run_samples (
        run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
        seq INTEGER NOT NULL,
        rtt_ms REAL NOT NULL,
        PRIMARY KEY (run_id, seq)
    );
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}
