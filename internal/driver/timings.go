package driver

import (
	"encoding/json"

	"gaia/internal/observ"
)

// TimingPayload is the machine-readable timing record of one unit.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	Cached  bool                 `json:"cached,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// Timings collects the timing records of results that have them.
func Timings(results []*CheckResult) []TimingPayload {
	out := make([]TimingPayload, 0, len(results))
	for _, r := range results {
		if r == nil || (r.Timing == nil && !r.Cached) {
			continue
		}
		p := TimingPayload{Kind: "unit", Path: r.Path, Cached: r.Cached}
		if r.Timing != nil {
			p.TotalMS = r.Timing.TotalMS
			p.Phases = r.Timing.Phases
		}
		out = append(out, p)
	}
	return out
}

// MarshalTimings renders timings as indented JSON.
func MarshalTimings(payloads []TimingPayload) ([]byte, error) {
	return json.MarshalIndent(payloads, "", "  ")
}
