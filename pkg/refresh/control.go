package refresh

import (
	"time"

	"github.com/go-drift/refresh/pkg/animation"
	"github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/graphics"
)

const (
	// DefaultExpandedHeight is the header height reserved while refreshing.
	DefaultExpandedHeight = 64.0
	// DefaultAnimationDuration is the length of animated transitions.
	DefaultAnimationDuration = 300 * time.Millisecond
)

// Control is a pull-to-refresh control attached to one Container.
//
// A Control is not safe for concurrent use. Call its methods on the UI
// thread; other goroutines reach it through platform.Dispatch.
type Control struct {
	state  State
	target State
	style  Style

	progress       float64
	expandedHeight float64
	isExpanded     bool
	topInset       float64

	defaultContentInsets graphics.EdgeInsets

	container      Container
	delegate       Delegate
	contentView    ContentView
	removeListener func()
	attached       bool

	gate      *Gate
	duration  time.Duration
	curve     func(float64) float64
	animation *animation.AnimationController
}

// Attach creates a control for container and starts observing its offset.
// The container's current content inset becomes the default inset. A nil
// delegate behaves like BaseDelegate; a nil content view selects
// NewDefaultContentView.
//
// Attaching to a nil container reports a configuration error and returns a
// detached control.
func Attach(container Container, delegate Delegate, contentView ContentView) *Control {
	c := &Control{
		state:          StateClosed,
		target:         StateClosed,
		expandedHeight: DefaultExpandedHeight,
		delegate:       delegate,
		gate:           NewGate(),
		duration:       DefaultAnimationDuration,
		curve:          animation.EaseInOut,
	}
	if container == nil {
		errors.Report(errors.Configf("refresh.Attach", "container is nil"))
		c.delegate = nil
		c.SetContentView(contentView)
		return c
	}
	c.container = container
	c.attached = true
	c.defaultContentInsets = container.ContentInset()
	c.SetContentView(contentView)
	c.removeListener = container.AddOffsetListener(c.handleOffset)
	return c
}

// Detach stops observing the container and drops the container and
// delegate. A detached control cannot be attached again. Detaching twice is
// harmless.
func (c *Control) Detach() {
	if !c.attached {
		return
	}
	c.attached = false
	if c.removeListener != nil {
		c.removeListener()
		c.removeListener = nil
	}
	c.container = nil
	c.delegate = nil
}

// IsAttached reports whether the control is observing a container.
func (c *Control) IsAttached() bool { return c.attached }

// State returns the current state.
func (c *Control) State() State { return c.state }

// Progress returns the pull distance as a fraction of the expanded height.
// It is only meaningful while the content is dragged or decelerating.
func (c *Control) Progress() float64 { return c.progress }

// IsExpanded reports whether the header currently reserves its height in
// the container's inset.
func (c *Control) IsExpanded() bool { return c.isExpanded }

// IsAnimating reports whether a transition holds the gate. Requests made
// meanwhile, animated or not, wait their turn.
func (c *Control) IsAnimating() bool { return c.gate.Busy() }

// Style returns the configured style.
func (c *Control) Style() Style { return c.style }

// SetStyle stores style. StyleStationary is not supported: it is stored,
// reported as a configuration error, and the control keeps scrolling.
func (c *Control) SetStyle(style Style) {
	if style == StyleStationary {
		errors.Report(errors.Configf("refresh.Control.SetStyle", "stationary style is not supported; using scrolling"))
	}
	c.style = style
}

// ExpandedHeight returns the header height reserved while refreshing.
func (c *Control) ExpandedHeight() float64 { return c.expandedHeight }

// SetExpandedHeight sets the header height. Values at or below zero are
// reported; negative values are clamped to zero. The new height applies
// to the next expansion.
func (c *Control) SetExpandedHeight(h float64) {
	if h <= 0 {
		errors.Report(errors.Configf("refresh.Control.SetExpandedHeight", "expanded height must be positive, got %v", h))
		h = max(h, 0)
	}
	c.expandedHeight = h
}

// DefaultContentInsets returns the container inset the control adds its
// header height to.
func (c *Control) DefaultContentInsets() graphics.EdgeInsets { return c.defaultContentInsets }

// SetDefaultContentInsets replaces the base inset and re-applies the
// control's current share on top of it. Hosts that change the container's
// inset while attached should do it through here.
func (c *Control) SetDefaultContentInsets(insets graphics.EdgeInsets) {
	c.defaultContentInsets = insets
	c.applyTopInset(c.topInset)
}

// AnimationDuration returns the length of animated transitions.
func (c *Control) AnimationDuration() time.Duration { return c.duration }

// SetAnimationDuration sets the length of animated transitions. Negative
// durations are treated as zero.
func (c *Control) SetAnimationDuration(d time.Duration) {
	c.duration = max(d, 0)
}

// SetAnimationCurve sets the easing curve. Nil selects linear.
func (c *Control) SetAnimationCurve(curve func(float64) float64) {
	if curve == nil {
		curve = animation.LinearCurve
	}
	c.curve = curve
}

// ContentView returns the header view.
func (c *Control) ContentView() ContentView { return c.contentView }

// SetContentView replaces the header view. The previous view is detached
// if it implements Detacher; the new one receives the current state,
// progress and last-updated time. Nil selects NewDefaultContentView.
func (c *Control) SetContentView(view ContentView) {
	if view == nil {
		view = NewDefaultContentView()
	}
	if d, ok := c.contentView.(Detacher); ok {
		d.Detach()
	}
	c.contentView = view
	view.SetState(c.state)
	view.SetProgress(c.progress)
	c.InvalidateLastUpdatedAt()
}

// VisibleHeight returns how much of the header is uncovered by pulling or
// by the reserved inset, in offset units.
func (c *Control) VisibleHeight() float64 {
	if c.container == nil {
		return 0
	}
	y := c.container.ContentOffset().Y + c.defaultContentInsets.Top
	return max(-y, 0)
}

// callDelegate calls fn with the delegate, or with BaseDelegate when there
// is none. A panicking delegate is reported as a KindDelegate error and the
// control carries on.
func (c *Control) callDelegate(method string, fn func(d Delegate)) {
	var d Delegate = BaseDelegate{}
	if c.delegate != nil {
		d = c.delegate
	}
	errors.Guard("refresh.Delegate."+method, errors.KindDelegate, func() { fn(d) })
}
