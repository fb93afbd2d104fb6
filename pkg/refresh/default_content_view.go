package refresh

import (
	"image"
	"strings"
	"time"

	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/widgets"
)

// LastUpdatedLayout formats the last-updated line.
const LastUpdatedLayout = "Jan 2, 15:04"

// DefaultContentView shows a status line, the last-updated time and a
// spinner while loading. While pulling, an arrow and a progress bar show how
// far there is to go.
type DefaultContentView struct {
	Theme Theme

	state         State
	progress      float64
	lastUpdatedAt time.Time
	spinner       *widgets.ActivityIndicator
	// fade is 1 while a closing transition has fully faded the text.
	fade float64
}

// NewDefaultContentView returns a content view in StateClosed with the dark
// theme.
func NewDefaultContentView() *DefaultContentView {
	v := &DefaultContentView{
		Theme:   DarkTheme(),
		spinner: widgets.NewActivityIndicator(widgets.ActivityIndicatorSizeMedium),
	}
	v.SetState(StateClosed)
	return v
}

func (v *DefaultContentView) SetState(state State) {
	v.state = state
	if isLoading(state) {
		v.spinner.StartAnimating()
	} else {
		v.spinner.StopAnimating()
	}
	if state != StateClosing {
		v.fade = 0
	}
}

func (v *DefaultContentView) SetProgress(progress float64) { v.progress = progress }

func (v *DefaultContentView) SetLastUpdatedAt(t time.Time) { v.lastUpdatedAt = t }

// State returns the last state pushed by the control.
func (v *DefaultContentView) State() State { return v.state }

// Progress returns the last pull progress pushed by the control.
func (v *DefaultContentView) Progress() float64 { return v.progress }

// LastUpdatedAt returns the last timestamp pushed by the control.
func (v *DefaultContentView) LastUpdatedAt() time.Time { return v.lastUpdatedAt }

// StatusText returns the status line without styling.
func (v *DefaultContentView) StatusText() string { return statusText(v.state) }

// LastUpdatedText returns the last-updated line, or "" before the first
// timestamp arrives.
func (v *DefaultContentView) LastUpdatedText() string {
	if v.lastUpdatedAt.IsZero() {
		return ""
	}
	return "Last updated: " + v.lastUpdatedAt.Format(LastUpdatedLayout)
}

// AnimateTransition fades the text out while closing.
func (v *DefaultContentView) AnimateTransition(from, to State, t float64) {
	if to == StateClosing {
		v.fade = t
	}
}

// Detach stops the spinner.
func (v *DefaultContentView) Detach() {
	v.spinner.StopAnimating()
}

func (v *DefaultContentView) indicator() string {
	switch {
	case isLoading(v.state):
		return v.spinner.Frame()
	case v.state == StateReady:
		return "↑"
	default:
		return "↓"
	}
}

func (v *DefaultContentView) lines() []string {
	lines := []string{v.indicator() + " " + v.StatusText()}
	lines = append(lines, v.LastUpdatedText())
	if !isLoading(v.state) && v.progress > 0 {
		bar := widgets.LinearProgressIndicator{Value: v.progress, Width: 12}
		lines = append(lines, bar.Render())
	}
	return lines
}

// Render draws the header rows centered in width cells.
func (v *DefaultContentView) Render(width int) string {
	if width <= 0 {
		return ""
	}
	lines := v.lines()
	status := v.Theme.statusStyle(width, v.fade)
	detail := v.Theme.detailStyle(width, v.fade)

	rows := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			rows[i] = status.Render(line)
			continue
		}
		rows[i] = detail.Render(line)
	}
	return strings.Join(rows, "\n")
}

// Image rasterizes the header lines.
func (v *DefaultContentView) Image(width, height int) image.Image {
	return graphics.RasterizeText(v.lines(), width, height, graphics.TextStyle{
		Color:      v.Theme.Status.Lerp(v.Theme.Background, v.fade),
		Background: v.Theme.Background,
	})
}
