package rulesconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysdoctor/internal/engine"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SingleKeyOverride(t *testing.T) {
	path := writeFile(t, "rules.json", `{"cpu_usage_high": 50}`)

	res := Load(path)

	want := engine.DefaultThresholds()
	want.CPUUsageHigh = 50
	assert.Equal(t, want, res.Thresholds)
	assert.Equal(t, path, res.Source)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Unknown)
}

func TestLoad_AllKeys(t *testing.T) {
	path := writeFile(t, "rules.json", `{
		"cpu_temp_critical": 90.5,
		"cpu_usage_high": 70,
		"ram_usage_high": 75,
		"disk_usage_high": 60,
		"disk_usage_critical": 90,
		"load_avg_high": 8,
		"uptime_reboot_hours": 168
	}`)

	res := Load(path)

	assert.Equal(t, engine.Thresholds{
		CPUTempCritical:   90.5,
		CPUUsageHigh:      70,
		RAMUsageHigh:      75,
		DiskUsageHigh:     60,
		DiskUsageCritical: 90,
		LoadAvgHigh:       8,
		UptimeRebootHours: 168,
	}, res.Thresholds)
	assert.Empty(t, res.Warnings)
}

func TestLoad_MissingFile(t *testing.T) {
	res := Load(filepath.Join(t.TempDir(), "absent.json"))

	assert.Equal(t, engine.DefaultThresholds(), res.Thresholds)
	assert.Equal(t, SourceDefaults, res.Source)
	require.Len(t, res.Warnings, 1)
	assert.True(t, errors.Is(res.Warnings[0], ErrNotFound))
}

func TestLoad_UnreadablePathIsNotFatal(t *testing.T) {
	// A directory cannot be read as a file.
	res := Load(t.TempDir())

	assert.Equal(t, engine.DefaultThresholds(), res.Thresholds)
	assert.Equal(t, SourceDefaults, res.Source)
	require.Len(t, res.Warnings, 1)
	assert.False(t, errors.Is(res.Warnings[0], ErrNotFound))
}

func TestLoad_EmptyFile(t *testing.T) {
	for _, content := range []string{"", "   \n\t"} {
		res := Load(writeFile(t, "rules.json", content))

		assert.Equal(t, engine.DefaultThresholds(), res.Thresholds)
		assert.Empty(t, res.Warnings)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "rules.yaml", "cpu_usage_high: 50\ndisk_usage_critical: 97.5\n")

	res := Load(path)

	want := engine.DefaultThresholds()
	want.CPUUsageHigh = 50
	want.DiskUsageCritical = 97.5
	assert.Equal(t, want, res.Thresholds)
	assert.Empty(t, res.Warnings)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"broken json", `{"cpu_usage_high": `, FormatJSON},
		{"json array", `[1, 2, 3]`, FormatJSON},
		{"json null", `null`, FormatJSON},
		{"json trailing data", `{"cpu_usage_high": 50} {"ram_usage_high": 60}`, FormatJSON},
		{"yaml scalar", `just a string`, FormatYAML},
		{"broken yaml", "cpu_usage_high: [1,\n", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse([]byte(tt.data), tt.format)

			assert.Equal(t, engine.DefaultThresholds(), res.Thresholds)
			assert.Len(t, res.Warnings, 1)
		})
	}
}

func TestParse_TypeMismatchFallsBack(t *testing.T) {
	res := Parse([]byte(`{"cpu_usage_high": "fifty", "ram_usage_high": null, "load_avg_high": true, "disk_usage_high": 70}`), FormatJSON)

	want := engine.DefaultThresholds()
	want.DiskUsageHigh = 70
	assert.Equal(t, want, res.Thresholds)

	require.Len(t, res.Warnings, 3)
	var fe *FieldError
	require.True(t, errors.As(res.Warnings[0], &fe))
	assert.Equal(t, "cpu_usage_high", fe.Key)
	assert.Equal(t, engine.DefaultCPUUsageHigh, fe.Fallback)
	assert.Contains(t, res.Warnings[1].Error(), "null")
}

func TestParse_JSONOverflowIsPerKey(t *testing.T) {
	res := Parse([]byte(`{"cpu_usage_high": 50, "load_avg_high": 1e400, "uptime_reboot_hours": 1.5e2}`), FormatJSON)

	want := engine.DefaultThresholds()
	want.CPUUsageHigh = 50
	want.UptimeRebootHours = 150
	assert.Equal(t, want, res.Thresholds)

	require.Len(t, res.Warnings, 1)
	var ferr *FieldError
	require.ErrorAs(t, res.Warnings[0], &ferr)
	assert.Equal(t, "load_avg_high", ferr.Key)
	assert.Equal(t, engine.DefaultLoadAvgHigh, ferr.Fallback)
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	res := Parse([]byte(`{"zeta": 1, "alpha": "x", "cpu_usage_high": 60}`), FormatJSON)

	assert.Equal(t, 60.0, res.Thresholds.CPUUsageHigh)
	assert.Equal(t, []string{"alpha", "zeta"}, res.Unknown)
	assert.Empty(t, res.Warnings)
}

func TestParse_NegativeValuesKeptAsIs(t *testing.T) {
	res := Parse([]byte(`{"load_avg_high": -2}`), FormatJSON)

	assert.Equal(t, -2.0, res.Thresholds.LoadAvgHigh)
	assert.Empty(t, res.Warnings)
}

func TestParse_YAMLNonFinite(t *testing.T) {
	res := Parse([]byte("cpu_usage_high: .nan\nram_usage_high: .inf\n"), FormatYAML)

	assert.Equal(t, engine.DefaultThresholds(), res.Thresholds)
	assert.Len(t, res.Warnings, 2)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("rules.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("/etc/sysdoctor/RULES.YML"))
	assert.Equal(t, FormatJSON, FormatFor("rules.json"))
	assert.Equal(t, FormatJSON, FormatFor("rules"))
}
