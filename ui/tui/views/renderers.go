package views

import (
	"sysdoctor/ui/tui/state"
)

func RenderDiagnoses(s state.AppState, width, height, cursor int, animCursor float64, spinnerView string) string {
	v := DiagnosesView{}
	return v.Render(s, ViewProps{
		Width:       width,
		Height:      height,
		Cursor:      cursor,
		AnimCursor:  animCursor,
		SpinnerView: spinnerView,
	})
}

func RenderMetrics(s state.AppState, width, height int, spinnerView, chartView string) string {
	v := MetricsView{}
	return v.Render(s, ViewProps{
		Width:       width,
		Height:      height,
		SpinnerView: spinnerView,
		ChartView:   chartView,
	})
}

func RenderConsole(s state.AppState, width, height, scrollY int, spinnerView, content string) string {
	v := ConsoleView{}
	return v.Render(s, ViewProps{
		Width:       width,
		Height:      height,
		ScrollY:     scrollY,
		SpinnerView: spinnerView,
		Content:     content,
	})
}

// ConsoleMaxScroll returns the furthest the console page can scroll.
func ConsoleMaxScroll(s state.AppState, width, height int, content string) int {
	return ConsoleView{}.MaxScroll(s, ViewProps{Width: width, Height: height, Content: content})
}
