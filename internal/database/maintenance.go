package database

// PruneOldRuns deletes runs older than 90 days along with their samples
func (db *DB) PruneOldRuns() error {
	if _, err := db.Exec(`
        DELETE FROM run_samples WHERE run_id IN (
            SELECT id FROM runs WHERE timestamp < datetime('now', '-90 days')
        )
    `); err != nil {
		return err
	}

	_, err := db.Exec(`DELETE FROM runs WHERE timestamp < datetime('now', '-90 days')`)
	return err
}
