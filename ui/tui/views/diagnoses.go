package views

import (
	"fmt"
	"math"

	"sysdoctor/ui/tui/state"
	"sysdoctor/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ZoneID names the mouse zone of the i-th diagnosis.
func ZoneID(i int) string {
	return fmt.Sprintf("diag_%d", i)
}

type DiagnosesView struct{}

func (v DiagnosesView) Render(s state.AppState, props ViewProps) string {
	header := renderHeader(s, props)

	if s.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			lipgloss.NewStyle().Padding(1, 2).Foreground(styles.CritColor).Render(fmt.Sprintf("Error: %v", s.Err)),
			renderFooter(""),
		)
	}
	if s.Report == nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, renderFooter(""))
	}

	diags := s.Report.Diagnoses
	if len(diags) == 0 {
		ok := lipgloss.NewStyle().Padding(1, 2).Bold(true).Foreground(styles.OKColor).Render("No problems detected")
		return lipgloss.JoinVertical(lipgloss.Left, header, ok, renderFooter(""))
	}

	var items []string
	for i, d := range diags {
		dist := math.Abs(float64(i) - props.AnimCursor)
		strength := 0.0
		if dist < 1.0 {
			strength = 1.0 - dist
		}

		borderColor := lipgloss.TerminalColor(styles.BaseColor)
		if strength > 0.1 || i == props.Cursor {
			borderColor = styles.BrandColor
		}

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			MarginLeft(2 + int(strength*2)).
			Width(44)

		if i == props.Cursor {
			box = box.Bold(true).Foreground(lipgloss.Color("#FFF"))
		} else {
			box = box.Foreground(lipgloss.Color("#AAA"))
		}

		label := fmt.Sprintf("%s %s", ColorForStatus(d.Severity).Render(d.Severity), d.Problem)
		items = append(items, zone.Mark(ZoneID(i), box.Render(label)))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, items...)

	cursor := props.Cursor
	if cursor < 0 || cursor >= len(diags) {
		cursor = 0
	}
	sel := diags[cursor]
	detail := styles.CardStyle.Width(48).Render(lipgloss.JoinVertical(lipgloss.Left,
		ColorForStatus(sel.Severity).Render(sel.Problem),
		"",
		lipgloss.NewStyle().Bold(true).Render("Cause"),
		sel.Cause,
		"",
		lipgloss.NewStyle().Bold(true).Render("Fix"),
		sel.Solution,
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#666")).Render("rule: "+sel.Rule),
	))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingTop(1).Render(list),
		detail,
	)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		renderFooter("[↑/↓] Select"),
	))
}
