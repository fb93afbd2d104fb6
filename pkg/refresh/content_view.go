package refresh

import (
	"fmt"
	"image"
	"time"
)

// ContentView draws the refresh header. The control pushes its state,
// pull progress and last-updated time into it; hosts call Render with the
// header width in cells.
type ContentView interface {
	SetState(state State)
	// SetProgress receives the pull distance as a fraction of the expanded
	// height. It exceeds 1 when pulled past it.
	SetProgress(progress float64)
	SetLastUpdatedAt(t time.Time)
	// Render returns the header rows, newline separated.
	Render(width int) string
}

// Detacher is implemented by content views that hold resources. Detach is
// called when the view is replaced.
type Detacher interface {
	Detach()
}

// TransitionAnimator is implemented by content views that animate between
// states. t runs from 0 to 1 over the transition.
type TransitionAnimator interface {
	AnimateTransition(from, to State, t float64)
}

// Rasterizer is implemented by content views that can draw themselves into
// an image.
type Rasterizer interface {
	Image(width, height int) image.Image
}

// Content view names accepted by NewContentView.
const (
	ContentViewDefault = "default"
	ContentViewSimple  = "simple"
)

// NewContentView builds a bundled content view by name. The empty name is
// ContentViewDefault.
func NewContentView(name string, theme Theme) (ContentView, error) {
	switch name {
	case "", ContentViewDefault:
		v := NewDefaultContentView()
		v.Theme = theme
		return v, nil
	case ContentViewSimple:
		v := NewSimpleContentView()
		v.Theme = theme
		return v, nil
	default:
		return nil, fmt.Errorf("unknown content view %q", name)
	}
}

func statusText(state State) string {
	switch state {
	case StateReady:
		return "Release to refresh…"
	case StateRefreshing, StateClosing:
		return "Loading…"
	default:
		return "Pull down to refresh…"
	}
}

func isLoading(state State) bool {
	return state == StateRefreshing || state == StateClosing
}
