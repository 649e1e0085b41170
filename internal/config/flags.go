package config

import (
	"flag"
	"fmt"
	"strconv"
)

// Parse resolves flags and positional arguments into a Config.
// Usage: pingstats [flags] [target] [count]
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("pingstats", flag.ContinueOnError)
	var (
		dbPath       = fs.String("db", "", "SQLite path for run history (empty disables persistence)")
		chartPath    = fs.String("chart", "", "Write a latency chart PNG to this path")
		history      = fs.Bool("history", false, "Print stored run history instead of probing (requires -db)")
		historyLimit = fs.Int("history-limit", 20, "Number of stored runs to show with -history")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Target:       DefaultTarget,
		Count:        DefaultCount,
		DatabasePath: *dbPath,
		ChartPath:    *chartPath,
		History:      *history,
		HistoryLimit: *historyLimit,
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", rest[2:])
	}
	if len(rest) > 0 {
		cfg.Target = rest[0]
	}
	if len(rest) > 1 {
		count, err := strconv.Atoi(rest[1])
		if err != nil {
			return Config{}, fmt.Errorf("count must be an integer, got %q", rest[1])
		}
		cfg.Count = count
	}

	return cfg, nil
}
