package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"sysdoctor/internal/collector"
	"sysdoctor/internal/engine"
	"sysdoctor/internal/output"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"WARN", colorYellow},
		{"CRIT", colorRed},
		{"OK", colorGreen},
		{"", colorGreen},
		{"UNKNOWN", colorGreen},
	}

	for _, tt := range tests {
		result := colorFor(tt.status)
		if result != tt.expected {
			t.Errorf("colorFor(%q) = %q; want %q", tt.status, result, tt.expected)
		}
	}
}

func TestPrintNoProblems(t *testing.T) {
	r := output.NewReport(collector.Snapshot{CPUUsagePercent: 10}, engine.DefaultThresholds())

	var buf bytes.Buffer
	Print(&buf, r, Options{})
	out := buf.String()

	if !strings.HasPrefix(out, "System Doctor\n=============\n") {
		t.Errorf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "No problems detected") {
		t.Errorf("expected healthy message, got:\n%s", out)
	}
	if strings.Contains(out, "Problem :") {
		t.Errorf("unexpected diagnosis block:\n%s", out)
	}
}

func TestPrintDiagnosesInOrder(t *testing.T) {
	s := collector.Snapshot{CPUUsagePercent: 90, RAMUsagePercent: 90, LoadAverage: 10}
	r := output.NewReport(s, engine.DefaultThresholds())

	var buf bytes.Buffer
	Print(&buf, r, Options{})
	out := buf.String()

	order := []string{"High CPU usage", "High memory usage", "High system load"}
	last := -1
	for _, problem := range order {
		idx := strings.Index(out, "Problem : "+problem)
		if idx < 0 {
			t.Fatalf("missing %q in:\n%s", problem, out)
		}
		if idx < last {
			t.Errorf("%q printed out of order", problem)
		}
		last = idx
	}

	if got := strings.Count(out, "Fix     :"); got != 3 {
		t.Errorf("expected 3 fix lines, got %d", got)
	}
	if strings.Contains(out, "\033[") {
		t.Error("colour codes emitted with Color disabled")
	}
}

func TestPrintColor(t *testing.T) {
	r := output.NewReport(collector.Snapshot{DiskUsagePercent: 99}, engine.DefaultThresholds())

	var buf bytes.Buffer
	Print(&buf, r, Options{Color: true})

	if !strings.Contains(buf.String(), colorRed+"Problem :"+colorReset) {
		t.Errorf("critical diagnosis not painted red:\n%q", buf.String())
	}
}

func TestPrintVerbose(t *testing.T) {
	s := collector.Snapshot{
		CPUUsagePercent: 12.5,
		Hostname:        "web-01",
		DiskPath:        "/",
		BootTime:        time.Now().Add(-3 * time.Hour),
	}
	r := output.NewReport(s, engine.DefaultThresholds())
	r.Warnings = []string{"partial snapshot: Disk: boom"}

	var buf bytes.Buffer
	Print(&buf, r, Options{Verbose: true})
	out := buf.String()

	for _, want := range []string{"web-01", "hours ago", "CPU Usage", "12.5%", "n/a", "warning: partial snapshot"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}
