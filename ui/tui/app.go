package tui

import (
	"bytes"
	"context"
	"time"

	"sysdoctor/internal/collector"
	"sysdoctor/internal/engine"
	"sysdoctor/internal/output"
	"sysdoctor/ui/console"
	"sysdoctor/ui/tui/state"
	"sysdoctor/ui/tui/styles"
	"sysdoctor/ui/tui/views"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// chartKeys are the check rows drawn as bars; all are on a 0-100 scale.
var chartKeys = []struct{ key, label string }{
	{"cpu_usage", "CPU"},
	{"ram_usage", "RAM"},
	{"disk_usage", "Disk"},
	{"cpu_temperature", "Temp"},
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	provider   collector.Provider
	thresholds engine.Thresholds
	state      state.AppState
	spinner    spinner.Model
	chart      barchart.Model
	cursor     int
	animCursor float64
	velocity   float64 // Physics velocity
	spring     harmonica.Spring
	scrollY    int
	consoleOut string
	quitting   bool
	width      int
	height     int
}

// Messages
type AnimateMsg time.Time
type ReportLoadedMsg struct {
	Report *output.Report
	Err    error
}

func InitialModel(provider collector.Provider, t engine.Thresholds) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Frequency 12 with damping 0.9 settles quickly without overshoot.
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	return MainModel{
		provider:   provider,
		thresholds: t,
		spinner:    s,
		chart:      barchart.New(30, 12, barchart.WithMaxValue(100)),
		spring:     spring,
		state: state.AppState{
			Loading:     true,
			CurrentPage: state.PageDiagnoses,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		diagnoseCmd(m.provider, m.thresholds),
		animateCmd(),
	)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func diagnoseCmd(p collector.Provider, t engine.Thresholds) tea.Cmd {
	return func() tea.Msg {
		r, err := output.Run(context.Background(), p, t)
		return ReportLoadedMsg{Report: r, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case ReportLoadedMsg:
		return m.handleReportLoadedMsg(msg)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.state.CurrentPage = m.state.CurrentPage.Next()
		m.scrollY = 0
		return m, nil
	case "r":
		if m.state.Loading {
			return m, nil
		}
		m.state.Loading = true
		return m, tea.Batch(m.spinner.Tick, diagnoseCmd(m.provider, m.thresholds))
	}

	switch m.state.CurrentPage {
	case state.PageDiagnoses:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.state.DiagnosisCount()-1 {
				m.cursor++
			}
		}
	case state.PageConsole:
		switch msg.String() {
		case "up", "k":
			if m.scrollY > 0 {
				m.scrollY--
			}
		case "down", "j":
			if m.scrollY < m.maxScroll() {
				m.scrollY++
			}
		}
	}

	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.cursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	newW := msg.Width/2 - 8
	if newW > 10 {
		m.chart.Resize(newW, 12)
		m.drawChart()
	}
	m.scrollY = min(m.scrollY, m.maxScroll())
	return m, nil
}

func (m *MainModel) handleReportLoadedMsg(msg ReportLoadedMsg) (tea.Model, tea.Cmd) {
	m.state.Loading = false
	m.state.LastUpdate = time.Now()
	if msg.Err != nil {
		m.state.Err = msg.Err
		return m, nil
	}

	m.state.Err = nil
	m.state.Report = msg.Report
	if m.cursor >= m.state.DiagnosisCount() {
		m.cursor = 0
	}

	var buf bytes.Buffer
	console.Print(&buf, msg.Report, console.Options{Verbose: true})
	m.consoleOut = buf.String()
	m.scrollY = min(m.scrollY, m.maxScroll())

	m.drawChart()
	return m, nil
}

func (m *MainModel) maxScroll() int {
	return views.ConsoleMaxScroll(m.state, m.width, m.height, m.consoleOut)
}

func (m *MainModel) drawChart() {
	m.chart.Clear()
	if m.state.Report == nil {
		return
	}

	data := make([]barchart.BarData, 0, len(chartKeys))
	for _, ck := range chartKeys {
		c := output.CheckByKey(m.state.Report.Checks, ck.key)
		if c == nil || c.Status == output.StatusNA {
			continue
		}
		data = append(data, barchart.BarData{
			Label: ck.label,
			Values: []barchart.BarValue{{
				Name:  ck.label,
				Value: min(c.Value, 100),
				Style: lipgloss.NewStyle().Foreground(styles.SeverityColor(c.Status)),
			}},
		})
	}
	m.chart.PushAll(data)
	m.chart.Draw()
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || m.state.CurrentPage != state.PageDiagnoses {
		return m, nil
	}
	for i := 0; i < m.state.DiagnosisCount(); i++ {
		if zone.Get(views.ZoneID(i)).InBounds(msg) {
			m.cursor = i
			return m, nil
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	switch m.state.CurrentPage {
	case state.PageMetrics:
		return views.RenderMetrics(m.state, m.width, m.height, m.spinner.View(), m.chart.View())
	case state.PageConsole:
		return views.RenderConsole(m.state, m.width, m.height, m.scrollY, m.spinner.View(), m.consoleOut)
	default:
		return views.RenderDiagnoses(m.state, m.width, m.height, m.cursor, m.animCursor, m.spinner.View())
	}
}

// Start runs the viewer until the user quits.
func Start(provider collector.Provider, t engine.Thresholds) error {
	m := InitialModel(provider, t)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
