package views

import (
	"fmt"
	"strings"

	"sysdoctor/ui/tui/state"
	"sysdoctor/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func ColorForStatus(status string) lipgloss.Style {
	return styles.StatusStyle.Foreground(styles.SeverityColor(status))
}

// renderTabs draws the page bar; the active page is highlighted.
func renderTabs(current state.Page) string {
	tabs := make([]string, 0, state.PageCount)
	for p := state.Page(0); int(p) < state.PageCount; p++ {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#888"))
		if p == current {
			style = style.Bold(true).Foreground(styles.BrandColor).Underline(true)
		}
		tabs = append(tabs, style.Render(p.String()))
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(tabs, " "))
}

func renderHeader(s state.AppState, props ViewProps) string {
	text := "SYSTEM DOCTOR"
	if s.Report != nil && s.Report.Snapshot.Hostname != "" {
		text += " // " + s.Report.Snapshot.Hostname
	}
	header := styles.HeaderStyle.Width(props.Width).Render(text)

	status := fmt.Sprintf(" Last run: %s", s.LastUpdate.Format("15:04:05"))
	if s.Loading {
		status = " " + props.SpinnerView + " Diagnosing..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Left, renderTabs(s.CurrentPage), lipgloss.NewStyle().Foreground(styles.Subtle).Render(status)),
	)
}

func renderFooter(hint string) string {
	keys := "[Tab] Page • [R] Re-run • [Q] Quit"
	if hint != "" {
		keys = hint + " • " + keys
	}
	return styles.HelpStyle.Render("\n" + keys)
}
