package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pingstats/internal/models"
)

// History writes a text summary of stored runs, newest first
func History(w io.Writer, runs []models.StoredRun) {
	fmt.Fprintf(w, "Ping Latency Run History\n")
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if len(runs) == 0 {
		fmt.Fprintln(w, "No stored runs.")
		return
	}

	for _, r := range runs {
		loss := 0.0
		if r.Sent > 0 {
			loss = float64(r.Sent-r.Received) / float64(r.Sent) * 100
		}

		fmt.Fprintf(w, "Run #%d  %s\n", r.ID, r.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "  Target: %s\n", r.Target)
		fmt.Fprintf(w, "  Probes: %d sent, %d received (%.1f%% loss)\n", r.Sent, r.Received, loss)
		fmt.Fprintf(w, "  Min/Avg/Max: %.3f / %.3f / %.3f ms\n", r.MinRTT, r.AvgRTT, r.MaxRTT)
		fmt.Fprintf(w, "  p50/p90/p95/p99: %.3f / %.3f / %.3f / %.3f ms\n", r.P50, r.P90, r.P95, r.P99)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Total Runs: %d\n", len(runs))
}
