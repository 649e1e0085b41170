package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pingstats/internal/analyzer"
	"pingstats/internal/config"
	"pingstats/internal/database"
	"pingstats/internal/probe"
	"pingstats/internal/report"
)

func main() {
	// Resolve arguments before anything else; no subprocess starts on a
	// usage error
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize run history when requested
	var db *database.DB
	if cfg.DatabasePath != "" {
		db, err = database.New(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize database schema: %v", err)
		}
	}

	if cfg.History {
		runs, err := db.RecentRuns(cfg.HistoryLimit)
		if err != nil {
			log.Fatalf("Failed to load run history: %v", err)
		}
		report.History(os.Stdout, runs)
		return
	}

	// An interrupt kills the probe child instead of orphaning it
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := analyzer.New(cfg, db, probe.New(), report.NewConsole(os.Stdout))
	if err := a.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
