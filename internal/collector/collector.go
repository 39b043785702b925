package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sysdoctor/internal/collector/services"
)

// PartialError reports sensors that could not be read. The snapshot
// returned alongside it is still usable: affected fields are zero, and a
// zero reading never trips a threshold.
type PartialError struct {
	Failures map[string]error // sensor name -> cause
}

func (e *PartialError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, name := range sensorOrder {
		if err, ok := e.Failures[name]; ok {
			parts = append(parts, name+": "+err.Error())
		}
	}
	return "partial snapshot: " + strings.Join(parts, "; ")
}

func (e *PartialError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, name := range sensorOrder {
		if err, ok := e.Failures[name]; ok {
			errs = append(errs, err)
		}
	}
	return errs
}

var sensorOrder = []string{"CPU", "Memory", "Disk", "Load", "Host"}

// SystemCollector reads a Snapshot from the local host. Sensors are read
// one after another; there is no background work.
type SystemCollector struct {
	cfg            CollectorConfig
	cpuSensor      services.Sensor
	memSensor      services.Sensor
	diskSensor     services.Sensor
	loadSensor     services.Sensor
	hostSensor     services.Sensor
	physicalSensor services.Sensor
	now            func() time.Time
}

func NewSystemCollector(cfg CollectorConfig) (*SystemCollector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SystemCollector{
		cfg:            cfg,
		cpuSensor:      services.NewCPUSensor(cfg.CPUSampleInterval),
		memSensor:      services.NewMemSensor(),
		diskSensor:     services.NewDiskSensor(cfg.DiskPath),
		loadSensor:     services.NewLoadSensor(),
		hostSensor:     services.NewHostSensor(),
		physicalSensor: services.NewPhysicalSensor(),
		now:            time.Now,
	}, nil
}

// Config returns the configuration the collector was built with.
func (s *SystemCollector) Config() CollectorConfig {
	return s.cfg
}

// Collect reads every sensor once. A failed required sensor yields a
// *PartialError together with a usable snapshot; a cancelled context is
// returned as is.
func (s *SystemCollector) Collect(ctx context.Context) (Snapshot, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	snap := Snapshot{CollectedAt: s.now(), DiskPath: s.cfg.DiskPath}
	failures := make(map[string]error)

	if res, err := s.cpuSensor.Collect(ctx); err != nil {
		failures[s.cpuSensor.Name()] = err
	} else {
		snap.CPUUsagePercent = res.(services.CPUResult).TotalUsage
	}

	if res, err := s.memSensor.Collect(ctx); err != nil {
		failures[s.memSensor.Name()] = err
	} else {
		snap.RAMUsagePercent = res.(services.MemResult).UsedPercent
	}

	if res, err := s.diskSensor.Collect(ctx); err != nil {
		failures[s.diskSensor.Name()] = err
	} else {
		snap.DiskUsagePercent = res.(services.DiskResult).UsedPercent
	}

	if res, err := s.loadSensor.Collect(ctx); err != nil {
		failures[s.loadSensor.Name()] = err
	} else {
		snap.LoadAverage = res.(services.LoadResult).Load1
	}

	if res, err := s.hostSensor.Collect(ctx); err != nil {
		failures[s.hostSensor.Name()] = err
	} else {
		h := res.(services.HostResult)
		snap.Hostname = h.Hostname
		snap.UptimeHours = float64(h.Uptime) / 3600
		if h.BootTime > 0 {
			snap.BootTime = time.Unix(int64(h.BootTime), 0)
		}
	}

	if s.cfg.EnableTemperatures {
		if res, err := s.physicalSensor.Collect(ctx); err == nil {
			key, temp, ok := PickCPUTemperature(res.(services.PhysicalResult).Temperatures, s.cfg.TemperatureKeys)
			if ok {
				snap.CPUTemperature = Celsius(temp)
				snap.TemperatureSensor = key
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("collect snapshot: %w", err)
	}
	if len(failures) > 0 {
		return snap, &PartialError{Failures: failures}
	}
	return snap, nil
}

// PickCPUTemperature selects the reading whose sensor key contains the
// earliest entry of preferred (case-insensitive). Non-positive readings are
// treated as unreadable.
func PickCPUTemperature(temps []services.TempStat, preferred []string) (string, float64, bool) {
	for _, want := range preferred {
		want = strings.ToLower(want)
		for _, t := range temps {
			if t.Temperature <= 0 {
				continue
			}
			if strings.Contains(strings.ToLower(t.SensorKey), want) {
				return t.SensorKey, t.Temperature, true
			}
		}
	}
	return "", 0, false
}

// IsPartial reports whether err only describes unreadable sensors.
func IsPartial(err error) bool {
	var perr *PartialError
	return errors.As(err, &perr)
}
