package state

import (
	"time"

	"sysdoctor/internal/output"
)

type Page int

const (
	PageDiagnoses Page = iota
	PageMetrics
	PageConsole // plain-text report, same as the check command
)

var pageNames = []string{"Diagnoses", "Metrics", "Console"}

// PageCount is the number of pages reachable with tab.
const PageCount = 3

func (p Page) String() string {
	if int(p) < 0 || int(p) >= len(pageNames) {
		return "Unknown"
	}
	return pageNames[p]
}

// Next returns the page tab moves to.
func (p Page) Next() Page {
	return (p + 1) % PageCount
}

// AppState holds the latest diagnosis run.
type AppState struct {
	Report      *output.Report
	Loading     bool
	LastUpdate  time.Time
	Err         error
	CurrentPage Page
}

// DiagnosisCount returns how many diagnoses the current report holds.
func (s AppState) DiagnosisCount() int {
	if s.Report == nil {
		return 0
	}
	return len(s.Report.Diagnoses)
}
