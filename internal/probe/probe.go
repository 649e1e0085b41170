package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"pingstats/internal/models"
)

// rttPattern matches an individual probe response RTT.
// Linux/Mac: "time=XX.X ms", Windows: "time=XXms".
// Deliberately does not match the "round-trip min/avg/max" summary line,
// which would otherwise inject the average as a bogus sample.
var rttPattern = regexp.MustCompile(`time[=<]([0-9.]+)\s*ms`)

// countsPattern matches the transmitted/received summary line.
// Linux: "20 packets transmitted, 18 received", macOS: "... 18 packets received"
var countsPattern = regexp.MustCompile(`([0-9]+) packets transmitted, ([0-9]+)(?: packets)? received`)

// Runner executes the external ping binary and parses its output as a stream
type Runner struct {
	pingPath string
	progress io.Writer // one dot per collected sample
	errOut   io.Writer // probe stderr, surfaced with a prefix
}

var _ models.Prober = (*Runner)(nil)

// New creates a Runner wired to the system ping binary and standard streams
func New() *Runner {
	return &Runner{
		pingPath: "ping",
		progress: os.Stdout,
		errOut:   os.Stderr,
	}
}

// Run launches the probe process and consumes its stdout incrementally.
// Samples and the tail buffer are populated while the child is alive, so
// partial results survive an interruption. The child's own exit code is
// never treated as an error here: a ping run with packet loss exits
// non-zero but still carries samples worth reporting.
func (r *Runner) Run(ctx context.Context, cfg models.RunConfig) (models.RunResult, error) {
	result := models.RunResult{
		Timestamp: time.Now(),
		Target:    cfg.Target,
		Count:     cfg.Count,
		Sent:      cfg.Count,
	}

	cmd := r.command(ctx, cfg)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return result, fmt.Errorf("stdout pipe failed: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return result, fmt.Errorf("stderr pipe failed: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return result, fmt.Errorf("failed to start %s: %w", r.pingPath, err)
	}

	// Surface stderr immediately; it never mutates the accumulators
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sc := bufio.NewScanner(stderr)
		for sc.Scan() {
			fmt.Fprintf(r.errOut, "probe: %s\n", sc.Text())
		}
	}()

	tail := newTailBuffer(tailLen)
	countsSeen := false

	sc := bufio.NewScanner(stdout)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		tail.Append(line)

		if rtt, ok := extractRTT(line); ok {
			result.Samples = append(result.Samples, rtt)
			fmt.Fprint(r.progress, ".")
		}

		if sent, received, ok := parsePacketCounts(line); ok {
			result.Sent, result.Received = sent, received
			countsSeen = true
		}
	}
	fmt.Fprintln(r.progress)

	wg.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("probe process failed: %w", err)
		}
	}

	result.TailLines = tail.Lines()
	if !countsSeen {
		result.Received = len(result.Samples)
	}
	return result, nil
}

// command builds the platform-specific ping invocation. The context kills
// the child if the parent is interrupted, so no orphan keeps probing.
func (r *Runner) command(ctx context.Context, cfg models.RunConfig) *exec.Cmd {
	count := strconv.Itoa(cfg.Count)
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, r.pingPath, "-n", count, cfg.Target)
	}
	return exec.CommandContext(ctx, r.pingPath, "-c", count, cfg.Target)
}

// extractRTT parses a single round-trip time from one output line
func extractRTT(line string) (float64, bool) {
	matches := rttPattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return 0, false
	}
	rtt, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false
	}
	return rtt, true
}

// parsePacketCounts parses the transmitted/received totals from the
// probe's own summary line
func parsePacketCounts(line string) (sent, received int, ok bool) {
	matches := countsPattern.FindStringSubmatch(line)
	if len(matches) < 3 {
		return 0, 0, false
	}
	sent, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, false
	}
	received, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, false
	}
	return sent, received, true
}
