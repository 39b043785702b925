package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")

	OKColor   = lipgloss.Color("46")
	WarnColor = lipgloss.Color("220")
	CritColor = lipgloss.Color("196")

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(1, 1)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666")).
			PaddingLeft(2)
)

// SeverityColor maps a diagnosis severity or check status to a colour.
func SeverityColor(status string) lipgloss.Color {
	switch status {
	case "WARN":
		return WarnColor
	case "CRIT":
		return CritColor
	}
	return OKColor
}
