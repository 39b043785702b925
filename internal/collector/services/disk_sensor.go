package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

type DiskResult struct {
	Path        string
	Fstype      string
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

// DiskSensor reports usage of the filesystem holding a single path.
type DiskSensor struct {
	path string
}

func NewDiskSensor(path string) *DiskSensor {
	if path == "" {
		path = "/"
	}
	return &DiskSensor{path: path}
}

func (s *DiskSensor) Name() string {
	return "Disk"
}

func (s *DiskSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *DiskSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *DiskSensor) Collect(ctx context.Context) (any, error) {
	u, err := disk.UsageWithContext(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to get disk usage for %s: %w", s.path, err)
	}

	return DiskResult{
		Path:        u.Path,
		Fstype:      u.Fstype,
		Total:       u.Total,
		Free:        u.Free,
		Used:        u.Used,
		UsedPercent: u.UsedPercent,
	}, nil
}
