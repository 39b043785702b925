package views

import (
	"fmt"

	"sysdoctor/internal/output"
	"sysdoctor/ui/tui/state"
	"sysdoctor/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type MetricsView struct{}

func (v MetricsView) Render(s state.AppState, props ViewProps) string {
	header := renderHeader(s, props)
	if s.Report == nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, renderFooter(""))
	}

	chart := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Usage vs threshold"),
		props.ChartView,
	))

	var rows []string
	for _, c := range s.Report.Checks {
		rows = append(rows, fmt.Sprintf("%-16s %10s  limit %-8s %s",
			c.Label, checkValue(c), trimFloat(c.Threshold)+c.Unit, ColorForStatus(c.Status).Render(c.Status)))
	}
	if bt := s.Report.Snapshot.BootTime; !bt.IsZero() {
		rows = append(rows, "", "Booted "+humanize.Time(bt))
	}
	table := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{lipgloss.NewStyle().Bold(true).Render("Checks")}, rows...)...,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, chart, table),
		renderFooter(""),
	)
}

func checkValue(c output.Check) string {
	if c.Status == output.StatusNA {
		return "n/a"
	}
	return trimFloat(c.Value) + c.Unit
}

func trimFloat(f float64) string {
	return humanize.FormatFloat("#,###.#", f)
}
