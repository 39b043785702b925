package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

type CPUResult struct {
	TotalUsage float64
	Model      string
	Cores      int
}

// CPUSensor samples overall CPU utilisation over a fixed interval.
// A zero interval compares against the previous call, which on the first
// call of a process means "since boot".
type CPUSensor struct {
	interval time.Duration
}

func NewCPUSensor(interval time.Duration) *CPUSensor {
	return &CPUSensor{interval: interval}
}

func (s *CPUSensor) Name() string {
	return "CPU"
}

func (s *CPUSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *CPUSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *CPUSensor) Collect(ctx context.Context) (any, error) {
	total, err := cpu.PercentWithContext(ctx, s.interval, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get total cpu percent: %w", err)
	}
	if len(total) == 0 {
		return nil, fmt.Errorf("failed to get total cpu percent: no samples")
	}

	info, err := cpu.InfoWithContext(ctx)
	model := "Unknown"
	if err == nil && len(info) > 0 {
		model = info[0].ModelName
	}

	cores, _ := cpu.CountsWithContext(ctx, true)

	return CPUResult{
		TotalUsage: total[0],
		Model:      model,
		Cores:      cores,
	}, nil
}
