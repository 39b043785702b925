package engine

// Thresholds are the configured boundaries the rules compare against.
// Negative values are accepted as-is; nothing here validates them.
type Thresholds struct {
	CPUTempCritical   float64 `json:"cpu_temp_critical" yaml:"cpu_temp_critical"`
	CPUUsageHigh      float64 `json:"cpu_usage_high" yaml:"cpu_usage_high"`
	RAMUsageHigh      float64 `json:"ram_usage_high" yaml:"ram_usage_high"`
	DiskUsageHigh     float64 `json:"disk_usage_high" yaml:"disk_usage_high"`
	DiskUsageCritical float64 `json:"disk_usage_critical" yaml:"disk_usage_critical"`
	LoadAvgHigh       float64 `json:"load_avg_high" yaml:"load_avg_high"`
	UptimeRebootHours float64 `json:"uptime_reboot_hours" yaml:"uptime_reboot_hours"`
}

const (
	DefaultCPUTempCritical   = 85.0
	DefaultCPUUsageHigh      = 80.0
	DefaultRAMUsageHigh      = 85.0
	DefaultDiskUsageHigh     = 80.0
	DefaultDiskUsageCritical = 95.0
	DefaultLoadAvgHigh       = 4.0
	DefaultUptimeRebootHours = 720.0
)

func DefaultThresholds() Thresholds {
	return Thresholds{
		CPUTempCritical:   DefaultCPUTempCritical,
		CPUUsageHigh:      DefaultCPUUsageHigh,
		RAMUsageHigh:      DefaultRAMUsageHigh,
		DiskUsageHigh:     DefaultDiskUsageHigh,
		DiskUsageCritical: DefaultDiskUsageCritical,
		LoadAvgHigh:       DefaultLoadAvgHigh,
		UptimeRebootHours: DefaultUptimeRebootHours,
	}
}

// Keys lists the configuration keys in declaration order.
var Keys = []string{
	"cpu_temp_critical",
	"cpu_usage_high",
	"ram_usage_high",
	"disk_usage_high",
	"disk_usage_critical",
	"load_avg_high",
	"uptime_reboot_hours",
}

// Field returns a pointer to the threshold stored under a configuration
// key, or nil for an unknown key.
func (t *Thresholds) Field(key string) *float64 {
	switch key {
	case "cpu_temp_critical":
		return &t.CPUTempCritical
	case "cpu_usage_high":
		return &t.CPUUsageHigh
	case "ram_usage_high":
		return &t.RAMUsageHigh
	case "disk_usage_high":
		return &t.DiskUsageHigh
	case "disk_usage_critical":
		return &t.DiskUsageCritical
	case "load_avg_high":
		return &t.LoadAvgHigh
	case "uptime_reboot_hours":
		return &t.UptimeRebootHours
	}
	return nil
}

// Get returns the threshold stored under a configuration key.
func (t Thresholds) Get(key string) (float64, bool) {
	p := t.Field(key)
	if p == nil {
		return 0, false
	}
	return *p, true
}
