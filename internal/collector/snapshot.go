package collector

import (
	"context"
	"time"
)

// Temperature is an optional reading in degrees Celsius. Valid is false
// when the platform exposes no usable CPU sensor.
type Temperature struct {
	Celsius float64 `json:"celsius"`
	Valid   bool    `json:"valid"`
}

// Celsius returns a present temperature reading.
func Celsius(v float64) Temperature {
	return Temperature{Celsius: v, Valid: true}
}

// Get returns the reading and whether it is present.
func (t Temperature) Get() (float64, bool) {
	return t.Celsius, t.Valid
}

// Snapshot is one read of the host metrics the diagnostic rules consume.
type Snapshot struct {
	CPUTemperature   Temperature `json:"cpu_temperature"`
	CPUUsagePercent  float64     `json:"cpu_usage_percent"`
	RAMUsagePercent  float64     `json:"ram_usage_percent"`
	DiskUsagePercent float64     `json:"disk_usage_percent"`
	LoadAverage      float64     `json:"load_average"` // 1-minute
	UptimeHours      float64     `json:"uptime_hours"`

	// Informational only; no rule reads these.
	CollectedAt       time.Time `json:"collected_at"`
	Hostname          string    `json:"hostname,omitempty"`
	DiskPath          string    `json:"disk_path,omitempty"`
	TemperatureSensor string    `json:"temperature_sensor,omitempty"`
	BootTime          time.Time `json:"boot_time"`
}

// Provider produces metrics snapshots.
type Provider interface {
	Collect(ctx context.Context) (Snapshot, error)
}
