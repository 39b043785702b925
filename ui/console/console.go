package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"sysdoctor/internal/engine"
	"sysdoctor/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

const title = "System Doctor"

// Options control how a report is rendered.
type Options struct {
	Color   bool // emit ANSI colour codes
	Verbose bool // include the metric table and host details
}

type painter bool

func (p painter) paint(color, s string) string {
	if !p {
		return s
	}
	return color + s + colorReset
}

// Print renders the report: a header, then one Problem/Cause/Fix block per
// diagnosis in evaluation order.
func Print(w io.Writer, r *output.Report, opts Options) {
	p := painter(opts.Color)

	fmt.Fprintln(w, p.paint(colorCyan, title))
	fmt.Fprintln(w, p.paint(colorCyan, strings.Repeat("=", len(title))))

	if opts.Verbose {
		printHost(w, p, r)
		printChecks(w, p, r.Checks)
	}

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "%s %s\n", p.paint(colorYellow, "warning:"), warn)
	}

	if len(r.Diagnoses) == 0 {
		fmt.Fprintf(w, "\n%s\n", p.paint(colorGreen, "No problems detected"))
		return
	}

	for _, d := range r.Diagnoses {
		printDiagnosis(w, p, d)
	}
}

func printDiagnosis(w io.Writer, p painter, d engine.Diagnosis) {
	color := colorFor(d.Severity)
	fmt.Fprintf(w, "\n%s %s\n", p.paint(color, "Problem :"), d.Problem)
	fmt.Fprintf(w, "%s %s\n", p.paint(colorCyan, "Cause   :"), d.Cause)
	fmt.Fprintf(w, "%s %s\n", p.paint(colorGreen, "Fix     :"), d.Solution)
}

func printHost(w io.Writer, p painter, r *output.Report) {
	s := r.Snapshot
	fmt.Fprintf(w, "%s\n", p.paint(colorCyan, "─ Host"))
	if s.Hostname != "" {
		fmt.Fprintf(w, "  %-22s %s\n", "Hostname", s.Hostname)
	}
	if !s.BootTime.IsZero() {
		fmt.Fprintf(w, "  %-22s %s (%s)\n", "Up since", s.BootTime.Format(time.DateTime), humanize.Time(s.BootTime))
	}
	if s.DiskPath != "" {
		fmt.Fprintf(w, "  %-22s %s\n", "Disk", s.DiskPath)
	}
	if s.TemperatureSensor != "" {
		fmt.Fprintf(w, "  %-22s %s\n", "Temperature sensor", s.TemperatureSensor)
	}
}

func printChecks(w io.Writer, p painter, checks []output.Check) {
	fmt.Fprintf(w, "%s\n", p.paint(colorCyan, "─ Metrics"))
	for _, c := range checks {
		dots := strings.Repeat("·", max(1, 22-len([]rune(c.Label))))
		fmt.Fprintf(w, "  %s%s %12s / %-10s %s\n",
			c.Label, p.paint(colorCyan, dots), formatValue(c), formatThreshold(c), marker(p, c.Status))
	}
}

func formatValue(c output.Check) string {
	if c.Status == output.StatusNA {
		return "n/a"
	}
	return humanize.FormatFloat("#,###.#", c.Value) + c.Unit
}

func formatThreshold(c output.Check) string {
	return humanize.FormatFloat("#,###.#", c.Threshold) + c.Unit
}

func marker(p painter, status string) string {
	switch status {
	case output.StatusOK:
		return p.paint(colorGreen, "✓")
	case output.StatusWarn:
		return p.paint(colorYellow, "!")
	case output.StatusCrit:
		return p.paint(colorRed, "X")
	default:
		return "-"
	}
}

func colorFor(status string) string {
	switch status {
	case "WARN":
		return colorYellow
	case "CRIT":
		return colorRed
	default:
		return colorGreen
	}
}
