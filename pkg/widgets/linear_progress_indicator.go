package widgets

import (
	"math"
	"strings"
)

// LinearProgressIndicator renders a one-row text progress bar.
//
//	widgets.LinearProgressIndicator{Value: 0.5, Width: 10}.Render() // "━━━━━─────"
type LinearProgressIndicator struct {
	// Value is the progress from 0.0 to 1.0. Out-of-range values are clamped.
	Value float64

	// Width is the bar length in cells. Zero renders nothing.
	Width int

	// Fill and Track override the glyphs. Empty means "━" and "─".
	Fill  string
	Track string
}

// Render returns the bar.
func (l LinearProgressIndicator) Render() string {
	if l.Width <= 0 {
		return ""
	}
	fill, track := l.Fill, l.Track
	if fill == "" {
		fill = "━"
	}
	if track == "" {
		track = "─"
	}
	value := l.Value
	if math.IsNaN(value) || value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(math.Round(value * float64(l.Width)))
	return strings.Repeat(fill, filled) + strings.Repeat(track, l.Width-filled)
}
