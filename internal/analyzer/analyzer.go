package analyzer

import (
	"context"
	"fmt"
	"log"

	"pingstats/internal/config"
	"pingstats/internal/database"
	"pingstats/internal/models"
	"pingstats/internal/report"
	"pingstats/internal/stats"
)

// Analyzer coordinates one sampling run from probe to report
type Analyzer struct {
	config  config.Config
	db      *database.DB // nil when persistence is disabled
	prober  models.Prober
	console *report.Console
}

// New creates a new Analyzer
func New(cfg config.Config, db *database.DB, prober models.Prober, console *report.Console) *Analyzer {
	return &Analyzer{
		config:  cfg,
		db:      db,
		prober:  prober,
		console: console,
	}
}

// Run executes the probe, prints the report, and persists the run when a
// database is attached. The returned error is the run's only fatal path:
// a probe that could not start, or a run that produced zero samples.
func (a *Analyzer) Run(ctx context.Context) error {
	runCfg := models.RunConfig{
		Target: a.config.Target,
		Count:  a.config.Count,
	}
	a.console.Banner(runCfg)

	result, err := a.prober.Run(ctx, runCfg)
	if err != nil {
		return err
	}

	a.console.StandardSummary(result)

	summary, err := stats.Summarize(result.Samples)
	if err != nil {
		return fmt.Errorf("run against %s: %w", runCfg.Target, err)
	}

	a.console.StabilityAnalysis(result, summary)

	if a.db != nil {
		if err := a.db.SaveRun(result, summary); err != nil {
			log.Printf("Failed to save run: %v", err)
		}
		if err := a.db.PruneOldRuns(); err != nil {
			log.Printf("Failed to prune old runs: %v", err)
		}
	}

	if a.config.ChartPath != "" {
		if err := report.LatencyChart(a.config.ChartPath, result); err != nil {
			log.Printf("Failed to generate latency chart: %v", err)
		} else {
			log.Printf("Latency chart written to %s", a.config.ChartPath)
		}
	}

	return nil
}
