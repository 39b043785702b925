package engine

import "sysdoctor/internal/collector"

const (
	SeverityWarning  = "WARN"
	SeverityCritical = "CRIT"
)

// Diagnosis is what a rule reports when its predicate holds.
type Diagnosis struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Problem  string `json:"problem"`
	Cause    string `json:"cause"`
	Solution string `json:"solution"`
}

// Rule pairs a predicate over (snapshot, thresholds) with a fixed payload.
//
// Rules sharing a non-empty Group are mutually exclusive: once one of them
// fires, later rules of the same group are skipped. Declare the most
// severe tier first.
type Rule struct {
	ID           string
	Group        string
	ThresholdKey string
	Severity     string
	Problem      string
	Cause        string
	Solution     string
	Match        func(s collector.Snapshot, t Thresholds) bool
}

func (r Rule) diagnosis() Diagnosis {
	return Diagnosis{
		Rule:     r.ID,
		Severity: r.Severity,
		Problem:  r.Problem,
		Cause:    r.Cause,
		Solution: r.Solution,
	}
}

const groupDisk = "disk_usage"

// table is evaluated top to bottom; output order equals declaration order.
var table = []Rule{
	{
		ID:           "cpu_overheating",
		ThresholdKey: "cpu_temp_critical",
		Severity:     SeverityCritical,
		Problem:      "CPU overheating",
		Cause:        "Poor cooling, dust buildup, or sustained heavy load",
		Solution:     "Clean the fans and heatsink, check thermal paste, and improve airflow",
		Match: func(s collector.Snapshot, t Thresholds) bool {
			temp, ok := s.CPUTemperature.Get()
			return ok && temp > t.CPUTempCritical
		},
	},
	{
		ID:           "cpu_usage_high",
		ThresholdKey: "cpu_usage_high",
		Severity:     SeverityWarning,
		Problem:      "High CPU usage",
		Cause:        "One or more processes are consuming most of the CPU",
		Solution:     "Identify heavy processes with top or htop and stop or limit them",
		Match: func(s collector.Snapshot, t Thresholds) bool {
			return s.CPUUsagePercent > t.CPUUsageHigh
		},
	},
	{
		ID:           "ram_usage_high",
		ThresholdKey: "ram_usage_high",
		Severity:     SeverityWarning,
		Problem:      "High memory usage",
		Cause:        "Too many applications running or a process leaking memory",
		Solution:     "Close unused applications, look for leaks, or add more RAM",
		Match: func(s collector.Snapshot, t Thresholds) bool {
			return s.RAMUsagePercent > t.RAMUsageHigh
		},
	},
	{
		ID:           "disk_usage_critical",
		Group:        groupDisk,
		ThresholdKey: "disk_usage_critical",
		Severity:     SeverityCritical,
		Problem:      "Critical disk usage",
		Cause:        "The disk is almost full; writes may start failing",
		Solution:     "Free space immediately: remove large files, old logs, and caches",
		Match: func(s collector.Snapshot, t Thresholds) bool {
			return s.DiskUsagePercent > t.DiskUsageCritical
		},
	},
	{
		ID:           "disk_usage_high",
		Group:        groupDisk,
		ThresholdKey: "disk_usage_high",
		Severity:     SeverityWarning,
		Problem:      "High disk usage",
		Cause:        "Accumulated files, logs, or caches",
		Solution:     "Clean temporary files and logs, or move data to other storage",
		Match: func(s collector.Snapshot, t Thresholds) bool {
			return s.DiskUsagePercent > t.DiskUsageHigh
		},
	},
	{
		ID:           "load_avg_high",
		ThresholdKey: "load_avg_high",
		Severity:     SeverityWarning,
		Problem:      "High system load",
		Cause:        "More runnable tasks than the CPUs can serve",
		Solution:     "Reduce concurrent workloads or spread them over time",
		Match: func(s collector.Snapshot, t Thresholds) bool {
			return s.LoadAverage > t.LoadAvgHigh
		},
	},
	{
		ID:           "uptime_reboot",
		ThresholdKey: "uptime_reboot_hours",
		Severity:     SeverityWarning,
		Problem:      "System uptime exceeds recommended reboot interval",
		Cause:        "Long uptime lets memory fragmentation and pending updates accumulate",
		Solution:     "Schedule a reboot to apply updates and reset system state",
		Match: func(s collector.Snapshot, t Thresholds) bool {
			return s.UptimeHours > t.UptimeRebootHours
		},
	},
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	return out
}
