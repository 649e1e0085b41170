package report

import (
	"fmt"
	"io"

	"pingstats/internal/models"
)

// Console writes the run report to a terminal-style writer
type Console struct {
	w io.Writer
}

// NewConsole creates a new console reporter
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Banner announces the run before any probe is sent
func (c *Console) Banner(cfg models.RunConfig) {
	fmt.Fprintf(c.w, "Pinging %s with %d probes\n", cfg.Target, cfg.Count)
}

// StandardSummary prints the probe tool's own closing lines, retained in
// the tail buffer during the run
func (c *Console) StandardSummary(result models.RunResult) {
	fmt.Fprintln(c.w, "\n--- Standard Ping Summary ---")
	for _, line := range result.TailLines {
		fmt.Fprintln(c.w, line)
	}
}

// StabilityAnalysis prints the percentile block computed from the run
func (c *Console) StabilityAnalysis(result models.RunResult, summary models.Summary) {
	fmt.Fprintln(c.w, "\n--- Enhanced Stability Analysis ---")
	fmt.Fprintf(c.w, "Samples: %d of %d probes (%.1f%% loss)\n",
		summary.SampleCount, result.Sent, result.PacketLoss())
	fmt.Fprintf(c.w, "Min/Avg/Max: %.3f / %.3f / %.3f ms\n",
		summary.MinRTT, summary.AvgRTT, summary.MaxRTT)

	rows := []struct {
		label string
		value float64
		note  string
	}{
		{"Median (p50)", summary.P50, "half of all probes were this fast or faster"},
		{"p90", summary.P90, "9 in 10 probes were this fast or faster"},
		{"p95", summary.P95, "all but the slowest 5% were this fast or faster"},
		{"p99", summary.P99, "worst case, excluding 1% outliers"},
	}
	for _, row := range rows {
		fmt.Fprintf(c.w, "  %-13s %10.3f ms   %s\n", row.label+":", row.value, row.note)
	}
}
