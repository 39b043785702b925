package engine

import "sysdoctor/internal/collector"

// Evaluate runs the rule table against one snapshot. It is a pure
// function: no I/O, and neither argument is modified. When nothing fires
// the result is an empty, non-nil slice.
func Evaluate(s collector.Snapshot, t Thresholds) []Diagnosis {
	return evaluate(table, s, t)
}

func evaluate(rules []Rule, s collector.Snapshot, t Thresholds) []Diagnosis {
	result := []Diagnosis{}
	fired := make(map[string]bool)

	for _, r := range rules {
		if r.Group != "" && fired[r.Group] {
			continue
		}
		if !r.Match(s, t) {
			continue
		}
		if r.Group != "" {
			fired[r.Group] = true
		}
		result = append(result, r.diagnosis())
	}

	return result
}
