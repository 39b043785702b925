package collector

import (
	"testing"
	"time"
)

func TestDefaultCollectorConfig(t *testing.T) {
	cfg := DefaultCollectorConfig()

	if cfg.CPUSampleInterval != 500*time.Millisecond {
		t.Errorf("Expected CPUSampleInterval 500ms, got %v", cfg.CPUSampleInterval)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Expected Timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.DiskPath != "/" {
		t.Errorf("Expected DiskPath '/', got '%s'", cfg.DiskPath)
	}
	if !cfg.EnableTemperatures {
		t.Error("Expected EnableTemperatures to be true by default")
	}
	if len(cfg.TemperatureKeys) != len(DefaultTemperatureKeys) {
		t.Errorf("Expected %d temperature keys, got %d", len(DefaultTemperatureKeys), len(cfg.TemperatureKeys))
	}

	// The defaults must be a copy, not an alias of the package variable.
	cfg.TemperatureKeys[0] = "mutated"
	if DefaultTemperatureKeys[0] == "mutated" {
		t.Error("DefaultCollectorConfig aliases DefaultTemperatureKeys")
	}
}

func TestCollectorConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CollectorConfig
		wantErr bool
	}{
		{
			name:    "valid default config",
			cfg:     DefaultCollectorConfig(),
			wantErr: false,
		},
		{
			name:    "zero sample interval is allowed",
			cfg:     DefaultCollectorConfig().WithCPUSampleInterval(0),
			wantErr: false,
		},
		{
			name:    "negative sample interval",
			cfg:     DefaultCollectorConfig().WithCPUSampleInterval(-time.Second),
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     DefaultCollectorConfig().WithTimeout(-time.Second),
			wantErr: true,
		},
		{
			name:    "sample longer than timeout",
			cfg:     DefaultCollectorConfig().WithTimeout(time.Second).WithCPUSampleInterval(2 * time.Second),
			wantErr: true,
		},
		{
			name:    "empty disk path",
			cfg:     DefaultCollectorConfig().WithDiskPath(""),
			wantErr: true,
		},
		{
			name:    "no temperature keys",
			cfg:     DefaultCollectorConfig().WithTemperatureKeys(),
			wantErr: true,
		},
		{
			name:    "no temperature keys with temperatures disabled",
			cfg:     DefaultCollectorConfig().WithTemperatureKeys().WithTemperatures(false),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCollectorConfig_WithMethods(t *testing.T) {
	cfg := DefaultCollectorConfig()

	newCfg := cfg.WithCPUSampleInterval(time.Second)
	if newCfg.CPUSampleInterval != time.Second {
		t.Errorf("WithCPUSampleInterval failed, got %v", newCfg.CPUSampleInterval)
	}
	// Original should be unchanged
	if cfg.CPUSampleInterval != 500*time.Millisecond {
		t.Error("WithCPUSampleInterval mutated original config")
	}

	newCfg = cfg.WithDiskPath("/home")
	if newCfg.DiskPath != "/home" {
		t.Errorf("WithDiskPath failed, got %s", newCfg.DiskPath)
	}

	newCfg = cfg.WithTemperatures(false)
	if newCfg.EnableTemperatures {
		t.Error("WithTemperatures(false) failed")
	}

	newCfg = cfg.WithTemperatureKeys("acpitz")
	if len(newCfg.TemperatureKeys) != 1 || newCfg.TemperatureKeys[0] != "acpitz" {
		t.Errorf("WithTemperatureKeys failed, got %v", newCfg.TemperatureKeys)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Field:   "TestField",
		Message: "test message",
	}

	expected := "config error: TestField test message"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}
