package output

import "sysdoctor/internal/engine"

// RuleInfo describes one rule of the table with its effective threshold.
type RuleInfo struct {
	ID           string  `json:"id" yaml:"id"`
	Group        string  `json:"group,omitempty" yaml:"group,omitempty"`
	Severity     string  `json:"severity" yaml:"severity"`
	ThresholdKey string  `json:"threshold_key" yaml:"threshold_key"`
	Threshold    float64 `json:"threshold" yaml:"threshold"`
	Problem      string  `json:"problem" yaml:"problem"`
	Cause        string  `json:"cause" yaml:"cause"`
	Solution     string  `json:"solution" yaml:"solution"`
}

// DescribeRules flattens the rule table in evaluation order.
func DescribeRules(t engine.Thresholds) []RuleInfo {
	rules := engine.Rules()
	out := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		limit, _ := t.Get(r.ThresholdKey)
		out = append(out, RuleInfo{
			ID:           r.ID,
			Group:        r.Group,
			Severity:     r.Severity,
			ThresholdKey: r.ThresholdKey,
			Threshold:    limit,
			Problem:      r.Problem,
			Cause:        r.Cause,
			Solution:     r.Solution,
		})
	}
	return out
}
