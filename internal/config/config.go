package config

import "fmt"

const (
	// DefaultTarget is probed when no target argument is given
	DefaultTarget = "google.com"

	// DefaultCount is the number of probes sent when no count argument is given
	DefaultCount = 20

	// MinCount is the smallest probe count that yields meaningful percentiles
	MinCount = 10
)

// Config holds all configuration for one invocation
type Config struct {
	Target       string
	Count        int
	DatabasePath string // empty disables run-history persistence
	ChartPath    string // empty disables the latency chart
	History      bool   // print stored history instead of probing
	HistoryLimit int
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target cannot be empty")
	}
	if c.Count < MinCount {
		return fmt.Errorf("count must be at least %d, got %d", MinCount, c.Count)
	}
	if c.History && c.DatabasePath == "" {
		return fmt.Errorf("-history requires -db")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history limit must be positive")
	}
	return nil
}
