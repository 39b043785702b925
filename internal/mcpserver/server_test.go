package mcpserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"sysdoctor/internal/collector"
	"sysdoctor/internal/engine"
	"sysdoctor/internal/logging"
)

// MockProvider implements collector.Provider for testing
type MockProvider struct {
	Snapshot collector.Snapshot
	Err      error
}

func (m *MockProvider) Collect(ctx context.Context) (collector.Snapshot, error) {
	return m.Snapshot, m.Err
}

func newTestServer(p collector.Provider) *Server {
	return NewServer(Config{ServerName: "sysdoctor", ServerVersion: "test", RulesSource: "rules.json"},
		p, engine.DefaultThresholds(), logging.Discard())
}

func TestHandleDiagnoseSystem(t *testing.T) {
	mockProvider := &MockProvider{
		Snapshot: collector.Snapshot{
			CPUUsagePercent:  45.5,
			RAMUsagePercent:  60.0,
			DiskUsagePercent: 97.0,
			Hostname:         "test-host",
			CollectedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	s := newTestServer(mockProvider)

	_, result, err := s.handleDiagnoseSystem(context.Background(), nil, NoArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Hostname != "test-host" {
		t.Errorf("expected hostname test-host, got %s", result.Hostname)
	}
	if result.CollectedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("unexpected collected_at %s", result.CollectedAt)
	}
	if result.Healthy {
		t.Error("expected unhealthy result")
	}
	if len(result.Diagnoses) != 1 || result.Diagnoses[0].Rule != "disk_usage_critical" {
		t.Errorf("expected only disk_usage_critical, got %+v", result.Diagnoses)
	}
	if len(result.Checks) == 0 {
		t.Error("expected check rows")
	}
}

func TestHandleDiagnoseSystem_PartialSnapshot(t *testing.T) {
	mockProvider := &MockProvider{
		Err: &collector.PartialError{Failures: map[string]error{"Load": errors.New("unsupported")}},
	}
	s := newTestServer(mockProvider)

	_, result, err := s.handleDiagnoseSystem(context.Background(), nil, NoArgs{})
	if err != nil {
		t.Fatalf("partial snapshot must not fail the tool: %v", err)
	}
	if !result.Healthy {
		t.Error("expected zero snapshot to be healthy")
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", result.Warnings)
	}
}

func TestHandleDiagnoseSystem_Error(t *testing.T) {
	s := newTestServer(&MockProvider{Err: context.DeadlineExceeded})

	_, _, err := s.handleDiagnoseSystem(context.Background(), nil, NoArgs{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected wrapped deadline error, got %v", err)
	}
}

func TestHandleEvaluateSnapshot(t *testing.T) {
	s := newTestServer(&MockProvider{})
	hot := 92.0

	tests := []struct {
		name  string
		args  EvaluateArgs
		rules []string
	}{
		{"healthy", EvaluateArgs{CPUUsagePercent: 10}, nil},
		{"temperature omitted", EvaluateArgs{CPUUsagePercent: 10}, nil},
		{"overheating", EvaluateArgs{CPUTemperature: &hot}, []string{"cpu_overheating"}},
		{"ordered", EvaluateArgs{CPUUsagePercent: 90, RAMUsagePercent: 90, LoadAverage: 10}, []string{"cpu_usage_high", "ram_usage_high", "load_avg_high"}},
		{"disk exclusion", EvaluateArgs{DiskUsagePercent: 96}, []string{"disk_usage_critical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := s.handleEvaluateSnapshot(context.Background(), nil, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Healthy != (len(tt.rules) == 0) {
				t.Errorf("healthy = %v, want %v", result.Healthy, len(tt.rules) == 0)
			}
			if len(result.Diagnoses) != len(tt.rules) {
				t.Fatalf("expected %d diagnoses, got %d", len(tt.rules), len(result.Diagnoses))
			}
			for i, id := range tt.rules {
				if result.Diagnoses[i].Rule != id {
					t.Errorf("diagnosis %d = %s, want %s", i, result.Diagnoses[i].Rule, id)
				}
			}
		})
	}
}

func TestHandleGetThresholds(t *testing.T) {
	s := newTestServer(&MockProvider{})

	_, result, err := s.handleGetThresholds(context.Background(), nil, NoArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != "rules.json" {
		t.Errorf("expected source rules.json, got %s", result.Source)
	}
	if result.Thresholds != engine.DefaultThresholds() {
		t.Errorf("unexpected thresholds %+v", result.Thresholds)
	}
}

func TestHandleListRules(t *testing.T) {
	custom := engine.DefaultThresholds()
	custom.LoadAvgHigh = 12
	s := NewServer(Config{ServerName: "sysdoctor"}, &MockProvider{}, custom, nil)

	_, result, err := s.handleListRules(context.Background(), nil, NoArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rules) != 7 {
		t.Fatalf("expected 7 rules, got %d", len(result.Rules))
	}
	if result.Rules[0].ID != "cpu_overheating" {
		t.Errorf("expected first rule cpu_overheating, got %s", result.Rules[0].ID)
	}
	for _, r := range result.Rules {
		if r.ID == "load_avg_high" && r.Threshold != 12 {
			t.Errorf("expected load threshold 12, got %v", r.Threshold)
		}
		if r.ThresholdKey == "" || r.Problem == "" {
			t.Errorf("incomplete rule %+v", r)
		}
	}
}
