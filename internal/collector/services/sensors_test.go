package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

type sensorTestCase struct {
	name     string
	factory  func() Sensor
	optional bool
}

var sensorCases = []sensorTestCase{
	{name: "CPU", factory: func() Sensor { return NewCPUSensor(50 * time.Millisecond) }},
	{name: "Memory", factory: func() Sensor { return NewMemSensor() }},
	{name: "Disk", factory: func() Sensor { return NewDiskSensor("/") }},
	{name: "Load", factory: func() Sensor { return NewLoadSensor() }, optional: true},
	{name: "Host", factory: func() Sensor { return NewHostSensor() }},
	{name: "Physical", factory: func() Sensor { return NewPhysicalSensor() }, optional: true},
}

func TestSensorsSuite(t *testing.T) {
	ctx := context.Background()

	for _, tc := range sensorCases {
		t.Run(tc.name, func(t *testing.T) {
			sensor := tc.factory()

			if sensor.Name() != tc.name {
				t.Errorf("Name() = %q, want %q", sensor.Name(), tc.name)
			}
			if err := sensor.Connect(ctx); err != nil {
				t.Fatalf("%s Connect failed: %v", tc.name, err)
			}
			defer sensor.Disconnect(ctx)

			result, err := sensor.Collect(ctx)
			if err != nil {
				if tc.optional {
					t.Logf("%s Collect skipped (optional): %v", tc.name, err)
					return
				}
				t.Skipf("%s Collect failed (might be environment specific): %v", tc.name, err)
			}
			if result == nil {
				t.Fatalf("%s Collect returned nil result", tc.name)
			}

			logSensorResult(t, tc.name, result)
		})
	}
}

func TestDiskSensorDefaultsToRoot(t *testing.T) {
	s := NewDiskSensor("")
	if s.path != "/" {
		t.Errorf("expected default path /, got %q", s.path)
	}
}

func logSensorResult(t *testing.T, name string, result any) {
	t.Helper()

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		t.Logf("%s result: %+v", name, result)
		return
	}

	t.Logf("%s result:\n%s", name, payload)
}
