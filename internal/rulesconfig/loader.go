// Package rulesconfig reads diagnostic thresholds from a JSON or YAML file.
//
// Loading never fails. Every key is optional and falls back to its default
// when missing or not a number; problems are reported as warnings on the
// Result so callers can log them. A file that cannot be opened at all
// yields the full default set.
package rulesconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"sysdoctor/internal/engine"
)

// SourceDefaults is reported as Result.Source when no file contributed.
const SourceDefaults = "defaults"

// ErrNotFound is wrapped by the warning emitted for a missing rules file.
var ErrNotFound = errors.New("rules file not found")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the decoder from the file extension; anything that is not
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// FieldError describes a key whose value could not be used.
type FieldError struct {
	Key      string
	Value    any
	Fallback float64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("rules: %s: expected a finite number, got %s; using default %g",
		e.Key, describe(e.Value), e.Fallback)
}

// Result is the outcome of loading a rules document.
type Result struct {
	Thresholds engine.Thresholds
	Source     string   // file path, or SourceDefaults
	Warnings   []error  // non-fatal problems, in key order
	Unknown    []string // ignored keys, sorted
}

// Load reads the rules file at path.
func Load(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		res := defaults()
		if errors.Is(err, fs.ErrNotExist) {
			res.Warnings = append(res.Warnings, fmt.Errorf("%w: %s", ErrNotFound, path))
		} else {
			res.Warnings = append(res.Warnings, fmt.Errorf("read rules file: %w", err))
		}
		return res
	}

	res := Parse(data, FormatFor(path))
	res.Source = path
	return res
}

// Parse decodes an in-memory rules document.
func Parse(data []byte, format Format) Result {
	res := defaults()
	if len(bytes.TrimSpace(data)) == 0 {
		return res
	}

	raw, err := decode(data, format)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Errorf("parse rules (%s): %w", format, err))
		return res
	}

	for _, key := range engine.Keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		field := res.Thresholds.Field(key)
		n, ok := toFloat(v)
		if !ok {
			res.Warnings = append(res.Warnings, &FieldError{Key: key, Value: v, Fallback: *field})
			continue
		}
		*field = n
	}

	for key := range raw {
		if res.Thresholds.Field(key) == nil {
			res.Unknown = append(res.Unknown, key)
		}
	}
	sort.Strings(res.Unknown)

	return res
}

func defaults() Result {
	return Result{
		Thresholds: engine.DefaultThresholds(),
		Source:     SourceDefaults,
	}
}

func decode(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		// Numbers stay json.Number so one out-of-range value only costs its own key.
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected data after the document")
		}
	}
	if raw == nil {
		return nil, errors.New("document is not a mapping of keys to values")
	}
	return raw, nil
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		parsed, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T %v", v, v)
}
