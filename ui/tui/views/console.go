package views

import (
	"fmt"
	"strings"

	"sysdoctor/ui/tui/state"
	"sysdoctor/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type ConsoleView struct{}

// viewport splits the content into lines and sizes the visible window.
func (v ConsoleView) viewport(header string, props ViewProps) (lines []string, height int) {
	height = props.Height - lipgloss.Height(header) - 4
	if height < 1 {
		height = 1
	}
	return strings.Split(strings.TrimRight(props.Content, "\n"), "\n"), height
}

// MaxScroll is the largest offset that still fills the window.
func (v ConsoleView) MaxScroll(s state.AppState, props ViewProps) int {
	lines, height := v.viewport(renderHeader(s, props), props)
	return max(0, len(lines)-height)
}

func (v ConsoleView) Render(s state.AppState, props ViewProps) string {
	header := renderHeader(s, props)
	lines, availableHeight := v.viewport(header, props)
	totalLines := len(lines)

	scrollY := min(max(props.ScrollY, 0), max(0, totalLines-availableHeight))

	end := scrollY + availableHeight
	if end > totalLines {
		end = totalLines
	}

	visibleLines := lines[scrollY:end]
	viewContent := strings.Join(visibleLines, "\n")

	box := lipgloss.NewStyle().
		Width(props.Width-4).
		Height(availableHeight).
		Padding(0, 1).
		Render(viewContent)

	footerText := fmt.Sprintf("Scroll: %d/%d", scrollY, totalLines)
	if totalLines > availableHeight {
		footerText += " • [↑/↓] Scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(box),
		lipgloss.NewStyle().PaddingLeft(2).Foreground(styles.Subtle).Render(footerText),
		renderFooter(""),
	)
}
