package output

import (
	"context"
	"fmt"
	"time"

	"sysdoctor/internal/collector"
	"sysdoctor/internal/engine"
)

// Report bundles one diagnosis run: the snapshot that was evaluated, the
// thresholds it was evaluated against and what fired.
type Report struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Snapshot    collector.Snapshot `json:"snapshot"`
	Thresholds  engine.Thresholds  `json:"thresholds"`
	Diagnoses   []engine.Diagnosis `json:"diagnoses"`
	Checks      []Check            `json:"checks"`
	Healthy     bool               `json:"healthy"`
	CollectErr  error              `json:"-"`
	Warnings    []string           `json:"warnings,omitempty"`
}

// NewReport evaluates s against t without collecting anything.
func NewReport(s collector.Snapshot, t engine.Thresholds) *Report {
	diags := engine.Evaluate(s, t)
	generated := s.CollectedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	return &Report{
		GeneratedAt: generated,
		Snapshot:    s,
		Thresholds:  t,
		Diagnoses:   diags,
		Checks:      BuildChecks(s, t),
		Healthy:     len(diags) == 0,
	}
}

// Run executes the full pipeline: Collect -> Evaluate -> Bundle.
// A partial collection failure still yields a report; its error is kept
// on CollectErr. Any other collection error is returned.
func Run(ctx context.Context, p collector.Provider, t engine.Thresholds) (*Report, error) {
	snap, err := p.Collect(ctx)
	if err != nil && !collector.IsPartial(err) {
		return nil, fmt.Errorf("collect: %w", err)
	}

	r := NewReport(snap, t)
	if err != nil {
		r.CollectErr = err
		r.Warnings = append(r.Warnings, err.Error())
	}
	return r, nil
}
