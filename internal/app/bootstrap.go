// Package app wires the pieces both binaries need: environment files,
// thresholds and the system collector.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"sysdoctor/internal/collector"
	"sysdoctor/internal/rulesconfig"
)

const (
	Name    = "sysdoctor"
	Version = "1.0.0"
)

// LoadEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set win. A missing file is only an error when
// required is true.
func LoadEnv(path string, required bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

// LoadThresholds reads the rules file and logs every problem found.
// It never fails; see rulesconfig.Load.
func LoadThresholds(path string, logger *slog.Logger) rulesconfig.Result {
	res := rulesconfig.Load(path)
	for _, w := range res.Warnings {
		logger.Warn("rules config", "path", path, "error", w)
	}
	if len(res.Unknown) > 0 {
		logger.Warn("rules config: ignoring unknown keys", "path", path, "keys", res.Unknown)
	}
	logger.Debug("thresholds loaded", "source", res.Source, "thresholds", res.Thresholds)
	return res
}

// CollectorOptions are the user-facing collector knobs.
type CollectorOptions struct {
	DiskPath  string
	CPUSample time.Duration
	// TemperatureKeys overrides the sensor preference order when not empty.
	TemperatureKeys []string
}

// NewCollector builds a SystemCollector from defaults plus opts.
func NewCollector(opts CollectorOptions) (*collector.SystemCollector, error) {
	cfg := collector.DefaultCollectorConfig()
	if opts.DiskPath != "" {
		cfg = cfg.WithDiskPath(opts.DiskPath)
	}
	if opts.CPUSample > 0 {
		cfg = cfg.WithCPUSampleInterval(opts.CPUSample)
	}
	if len(opts.TemperatureKeys) > 0 {
		cfg = cfg.WithTemperatureKeys(opts.TemperatureKeys...)
	}
	c, err := collector.NewSystemCollector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create collector: %w", err)
	}
	return c, nil
}
