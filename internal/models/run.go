package models

import "time"

// RunConfig describes one sampling run; immutable once the probe starts
type RunConfig struct {
	Target string
	Count  int // requested number of probes
}

// RunResult holds everything collected while the probe process was alive
type RunResult struct {
	Timestamp time.Time
	Target    string
	Count     int       // requested probes
	Sent      int       // probes actually transmitted
	Received  int       // probes answered
	Samples   []float64 // round-trip times in ms, arrival order
	TailLines []string  // last raw output lines from the probe
}

// PacketLoss returns the loss percentage for the run
func (r RunResult) PacketLoss() float64 {
	if r.Sent == 0 {
		return 0
	}
	return float64(r.Sent-r.Received) / float64(r.Sent) * 100
}
