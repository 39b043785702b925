package collector

import "time"

// CollectorConfig contains configurable parameters for the system collector.
// Use DefaultCollectorConfig() to get sensible defaults, then override as needed.
type CollectorConfig struct {
	CPUSampleInterval time.Duration // Window for the CPU usage sample (default: 500ms)
	Timeout           time.Duration // Upper bound for one Collect call, 0 disables (default: 10s)

	DiskPath string // Filesystem whose usage is reported (default: "/")

	// Sensor key substrings tried in order when picking the CPU temperature.
	TemperatureKeys    []string
	EnableTemperatures bool // Whether to read temperature sensors (default: true)
}

// DefaultTemperatureKeys covers the usual hwmon/SMC names for the CPU package.
var DefaultTemperatureKeys = []string{
	"coretemp_package_id_0",
	"k10temp_tctl",
	"k10temp_tdie",
	"cpu_thermal",
	"tc0p", // macOS SMC CPU proximity
	"coretemp",
	"k10temp",
	"cpu",
}

// DefaultCollectorConfig returns a CollectorConfig with sensible defaults.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		CPUSampleInterval:  500 * time.Millisecond,
		Timeout:            10 * time.Second,
		DiskPath:           "/",
		TemperatureKeys:    append([]string(nil), DefaultTemperatureKeys...),
		EnableTemperatures: true,
	}
}

// WithCPUSampleInterval returns a copy of the config with a modified CPU sample window.
func (c CollectorConfig) WithCPUSampleInterval(d time.Duration) CollectorConfig {
	c.CPUSampleInterval = d
	return c
}

// WithTimeout returns a copy of the config with a modified collection timeout.
func (c CollectorConfig) WithTimeout(d time.Duration) CollectorConfig {
	c.Timeout = d
	return c
}

// WithDiskPath returns a copy of the config with a modified disk path.
func (c CollectorConfig) WithDiskPath(path string) CollectorConfig {
	c.DiskPath = path
	return c
}

// WithTemperatures returns a copy of the config with temperature collection enabled/disabled.
func (c CollectorConfig) WithTemperatures(enabled bool) CollectorConfig {
	c.EnableTemperatures = enabled
	return c
}

// WithTemperatureKeys returns a copy of the config with a new sensor key preference list.
func (c CollectorConfig) WithTemperatureKeys(keys ...string) CollectorConfig {
	c.TemperatureKeys = append([]string(nil), keys...)
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c CollectorConfig) Validate() error {
	if c.CPUSampleInterval < 0 {
		return &ConfigError{Field: "CPUSampleInterval", Message: "must not be negative"}
	}
	if c.Timeout < 0 {
		return &ConfigError{Field: "Timeout", Message: "must not be negative"}
	}
	if c.Timeout > 0 && c.CPUSampleInterval >= c.Timeout {
		return &ConfigError{Field: "CPUSampleInterval", Message: "must be shorter than Timeout"}
	}
	if c.DiskPath == "" {
		return &ConfigError{Field: "DiskPath", Message: "must not be empty"}
	}
	if c.EnableTemperatures && len(c.TemperatureKeys) == 0 {
		return &ConfigError{Field: "TemperatureKeys", Message: "must not be empty when temperatures are enabled"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
