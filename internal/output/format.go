package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sysdoctor/internal/collector"
	"sysdoctor/internal/engine"
)

// Check statuses.
const (
	StatusOK   = "OK"
	StatusWarn = "WARN"
	StatusCrit = "CRIT"
	StatusNA   = "N/A"
)

// Check is one metric compared against the threshold that guards it.
// View-model only; nothing here prints.
type Check struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Threshold float64 `json:"threshold"`
	Status    string  `json:"status"`
}

// BuildChecks converts a snapshot into one row per diagnosed metric.
// Disk usage gets a single row graded against both tiers.
func BuildChecks(s collector.Snapshot, t engine.Thresholds) []Check {
	checks := make([]Check, 0, 6)

	temp := Check{Key: "cpu_temperature", Label: "CPU Temperature", Unit: "°C", Threshold: t.CPUTempCritical, Status: StatusNA}
	if v, ok := s.CPUTemperature.Get(); ok {
		temp.Value = v
		temp.Status = grade(v, t.CPUTempCritical, StatusCrit)
	}
	checks = append(checks, temp)

	checks = append(checks,
		Check{Key: "cpu_usage", Label: "CPU Usage", Value: s.CPUUsagePercent, Unit: "%", Threshold: t.CPUUsageHigh, Status: grade(s.CPUUsagePercent, t.CPUUsageHigh, StatusWarn)},
		Check{Key: "ram_usage", Label: "RAM Usage", Value: s.RAMUsagePercent, Unit: "%", Threshold: t.RAMUsageHigh, Status: grade(s.RAMUsagePercent, t.RAMUsageHigh, StatusWarn)},
		diskCheck(s.DiskUsagePercent, t),
		Check{Key: "load_average", Label: "Load Avg (1m)", Value: s.LoadAverage, Threshold: t.LoadAvgHigh, Status: grade(s.LoadAverage, t.LoadAvgHigh, StatusWarn)},
		Check{Key: "uptime", Label: "Uptime", Value: s.UptimeHours, Unit: "h", Threshold: t.UptimeRebootHours, Status: grade(s.UptimeHours, t.UptimeRebootHours, StatusWarn)},
	)
	return checks
}

func diskCheck(v float64, t engine.Thresholds) Check {
	c := Check{Key: "disk_usage", Label: "Disk Usage", Value: v, Unit: "%", Threshold: t.DiskUsageHigh, Status: StatusOK}
	switch {
	case v > t.DiskUsageCritical:
		c.Threshold = t.DiskUsageCritical
		c.Status = StatusCrit
	case v > t.DiskUsageHigh:
		c.Status = StatusWarn
	}
	return c
}

func grade(v, limit float64, over string) string {
	if v > limit {
		return over
	}
	return StatusOK
}

// CheckByKey returns the row stored under key, or nil.
func CheckByKey(checks []Check, key string) *Check {
	for i := range checks {
		if checks[i].Key == key {
			return &checks[i]
		}
	}
	return nil
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
