package main

import "testing"

func TestParseSnapshotArgs(t *testing.T) {
	args, err := parseSnapshotArgs([]string{"cpu_usage_percent=93", "load_average=1.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["cpu_usage_percent"] != 93.0 || args["load_average"] != 1.5 {
		t.Errorf("unexpected args %v", args)
	}

	if _, err := parseSnapshotArgs([]string{"cpu_usage_percent"}); err == nil {
		t.Error("expected error for missing value")
	}
	if _, err := parseSnapshotArgs([]string{"cpu_usage_percent=high"}); err == nil {
		t.Error("expected error for non-numeric value")
	}
}
