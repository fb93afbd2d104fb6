package refresh

import (
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/widgets"
)

// SimpleContentView shows the status centered while pulling and only a
// centered spinner while loading. It is blank while closing.
type SimpleContentView struct {
	Theme Theme

	state         State
	progress      float64
	lastUpdatedAt time.Time
	spinner       *widgets.ActivityIndicator
}

// NewSimpleContentView returns a content view in StateClosed.
func NewSimpleContentView() *SimpleContentView {
	v := &SimpleContentView{
		Theme:   DarkTheme(),
		spinner: widgets.NewActivityIndicator(widgets.ActivityIndicatorSizeLarge),
	}
	v.SetState(StateClosed)
	return v
}

func (v *SimpleContentView) SetState(state State) {
	v.state = state
	if state == StateRefreshing {
		v.spinner.StartAnimating()
	} else {
		v.spinner.StopAnimating()
	}
}

func (v *SimpleContentView) SetProgress(progress float64) { v.progress = progress }

// SetLastUpdatedAt stores t; the simple view does not display it.
func (v *SimpleContentView) SetLastUpdatedAt(t time.Time) { v.lastUpdatedAt = t }

// State returns the last state pushed by the control.
func (v *SimpleContentView) State() State { return v.state }

// Detach stops the spinner.
func (v *SimpleContentView) Detach() { v.spinner.StopAnimating() }

func (v *SimpleContentView) line() string {
	switch v.state {
	case StateRefreshing:
		return v.spinner.Frame()
	case StateClosing:
		return ""
	default:
		return statusText(v.state)
	}
}

// Render draws a single centered row.
func (v *SimpleContentView) Render(width int) string {
	if width <= 0 {
		return ""
	}
	style := v.Theme.statusStyle(width, 0)
	if v.state == StateRefreshing {
		style = v.Theme.accentStyle().Width(width).Align(lipgloss.Center)
	}
	return style.Render(v.line())
}

// Image rasterizes the single row.
func (v *SimpleContentView) Image(width, height int) image.Image {
	line := v.line()
	var lines []string
	if strings.TrimSpace(line) != "" {
		lines = []string{line}
	}
	return graphics.RasterizeText(lines, width, height, graphics.TextStyle{
		Color:      v.Theme.Status,
		Background: v.Theme.Background,
	})
}
