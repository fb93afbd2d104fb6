package widgets

import (
	"time"

	"github.com/go-drift/refresh/pkg/animation"
)

// ActivityIndicatorSize selects the spinner glyph set.
type ActivityIndicatorSize int

const (
	// ActivityIndicatorSizeSmall is a three-dot pulse.
	ActivityIndicatorSizeSmall ActivityIndicatorSize = iota
	// ActivityIndicatorSizeMedium is a braille spinner (default).
	ActivityIndicatorSizeMedium
	// ActivityIndicatorSizeLarge is a quarter-circle spinner.
	ActivityIndicatorSizeLarge
)

var activityFrames = map[ActivityIndicatorSize][]string{
	ActivityIndicatorSizeSmall:  {"·  ", "·· ", "···", " ··", "  ·", "   "},
	ActivityIndicatorSizeMedium: {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	ActivityIndicatorSizeLarge:  {"◐", "◓", "◑", "◒"},
}

// ActivityIndicatorInterval is the time each spinner frame is shown.
const ActivityIndicatorInterval = 80 * time.Millisecond

// ActivityIndicator is a text spinner driven by the animation clock. It
// has no ticker of its own: hosts re-render every frame and the current
// glyph is derived from the time since StartAnimating.
type ActivityIndicator struct {
	// Size selects the glyph set.
	Size ActivityIndicatorSize

	animating bool
	started   time.Time
}

// NewActivityIndicator returns a stopped indicator.
func NewActivityIndicator(size ActivityIndicatorSize) *ActivityIndicator {
	return &ActivityIndicator{Size: size}
}

// StartAnimating starts the spinner. Calling it while animating keeps the
// current phase.
func (a *ActivityIndicator) StartAnimating() {
	if a.animating {
		return
	}
	a.animating = true
	a.started = animation.Now()
}

// StopAnimating stops the spinner; Frame returns blank glyphs afterwards.
func (a *ActivityIndicator) StopAnimating() {
	a.animating = false
}

// IsAnimating reports whether the spinner is running.
func (a *ActivityIndicator) IsAnimating() bool {
	return a.animating
}

// Frame returns the glyph for the current instant.
func (a *ActivityIndicator) Frame() string {
	frames := activityFrames[a.Size]
	if frames == nil {
		frames = activityFrames[ActivityIndicatorSizeMedium]
	}
	if !a.animating {
		return blank(frames[0])
	}
	elapsed := animation.Now().Sub(a.started)
	if elapsed < 0 {
		elapsed = 0
	}
	return frames[int(elapsed/ActivityIndicatorInterval)%len(frames)]
}

func blank(glyph string) string {
	n := 0
	for range glyph {
		n++
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
