package refresh

import (
	"time"

	"github.com/go-drift/refresh/pkg/animation"
	"github.com/go-drift/refresh/pkg/errors"
)

const transitionOp = "refresh.Control.transition"

// step is one state change of a transition.
type step struct {
	to     State
	expand bool
}

// StartRefreshing moves the control to StateRefreshing, for refreshes
// the user did not pull for. With expand the header takes its height in
// the inset; without it the refresh runs out of view. It does nothing when
// the control is refreshing or a refresh is already on its way.
func (c *Control) StartRefreshing(expand, animated bool, completion func()) {
	if c.target == StateRefreshing {
		return
	}
	c.transition(animated, completion, step{to: StateRefreshing, expand: expand})
}

// FinishRefreshing closes the header through StateClosing and then
// StateClosed, and refreshes the last-updated time. It does nothing unless
// the control is refreshing or about to be. completion runs once the
// control is closed.
func (c *Control) FinishRefreshing(animated bool, completion func()) {
	if c.target != StateRefreshing {
		return
	}
	c.transition(animated, completion, step{to: StateClosing}, step{to: StateClosed})
	c.InvalidateLastUpdatedAt()
}

// InvalidateLastUpdatedAt asks the delegate for the last-updated time and
// hands it to the content view. Without an answer the current time is used.
func (c *Control) InvalidateLastUpdatedAt() {
	var (
		t  time.Time
		ok bool
	)
	c.callDelegate("LastUpdatedAt", func(d Delegate) { t, ok = d.LastUpdatedAt(c) })
	if !ok {
		t = animation.Now()
	}
	if c.contentView != nil {
		errors.Guard("refresh.ContentView.SetLastUpdatedAt", errors.KindRender, func() {
			c.contentView.SetLastUpdatedAt(t)
		})
	}
}

// transition is the only place state changes. It runs steps in order: the
// first may animate, the rest follow without animation. Will and did
// notifications bracket every step, and each step leaves the state the
// previous request lands on.
//
// Animated transitions hold the gate until their last step is applied.
// While the gate is busy, non-animated requests queue behind it too.
func (c *Control) transition(animated bool, completion func(), steps ...step) {
	first, last := steps[0], steps[len(steps)-1]
	from := c.target
	c.target = last.to
	c.willTransition(first.to, from, animated)

	if !animated && !c.gate.Busy() {
		c.runSteps(from, steps)
		if completion != nil {
			completion()
		}
		return
	}

	c.gate.Acquire(func(release func()) {
		finished := false
		finish := func() {
			if finished {
				return
			}
			finished = true
			release()
			if completion != nil {
				completion()
			}
		}
		onPanic := func(any) {
			if !finished {
				c.land(last)
				c.didTransition(last.to, from, animated)
				finish()
			}
		}
		defer errors.RecoverWithCallback(transitionOp, onPanic)

		if !animated {
			c.runSteps(from, steps)
			finish()
			return
		}

		shown := c.state
		c.apply(first)
		c.animate(shown, first.to, func() {
			defer errors.RecoverWithCallback(transitionOp, onPanic)
			c.didTransition(first.to, from, true)
			c.follow(first.to, steps[1:])
			finish()
		})
	})
}

// runSteps applies steps without animation. The first step's will
// notification has already been sent.
func (c *Control) runSteps(from State, steps []step) {
	c.apply(steps[0])
	c.didTransition(steps[0].to, from, false)
	c.follow(steps[0].to, steps[1:])
}

// follow applies the steps after the first one.
func (c *Control) follow(from State, steps []step) {
	for _, s := range steps {
		c.willTransition(s.to, from, false)
		c.apply(s)
		c.didTransition(s.to, from, false)
		from = s.to
	}
}

func (c *Control) apply(s step) {
	prev := c.state
	c.state = s.to
	if c.contentView != nil {
		errors.Guard("refresh.ContentView.SetState", errors.KindRender, func() {
			c.contentView.SetState(s.to)
		})
	}

	switch {
	case prev != StateRefreshing && s.to == StateRefreshing:
		c.callDelegate("DidStartRefreshing", func(d Delegate) { d.DidStartRefreshing(c) })
	case prev == StateRefreshing && s.to != StateRefreshing:
		c.callDelegate("DidFinishRefreshing", func(d Delegate) { d.DidFinishRefreshing(c) })
	}

	c.setExpanded(s.expand)
}

// land puts the control in the final state of a transition that panicked
// part way, so the gate and the inset never stay behind.
func (c *Control) land(s step) {
	c.state = s.to
	if c.contentView != nil {
		errors.Guard("refresh.ContentView.SetState", errors.KindRender, func() {
			c.contentView.SetState(s.to)
		})
	}
	errors.Guard(transitionOp, errors.KindPanic, func() { c.setExpanded(s.expand) })
}

func (c *Control) willTransition(to, from State, animated bool) {
	c.callDelegate("WillTransition", func(d Delegate) { d.WillTransition(c, to, from, animated) })
}

func (c *Control) didTransition(to, from State, animated bool) {
	c.callDelegate("DidTransition", func(d Delegate) { d.DidTransition(c, to, from, animated) })
}

// animate runs the visual part of a transition and calls done when it
// completes. The state itself has already changed.
func (c *Control) animate(from, to State, done func()) {
	controller := animation.NewAnimationController(c.duration)
	controller.Curve = c.curve
	c.animation = controller

	controller.AddListener(func() {
		if a, ok := c.contentView.(TransitionAnimator); ok {
			errors.Guard("refresh.ContentView.AnimateTransition", errors.KindRender, func() {
				a.AnimateTransition(from, to, controller.Value)
			})
		}
	})
	controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status != animation.AnimationCompleted {
			return
		}
		controller.Dispose()
		if c.animation == controller {
			c.animation = nil
		}
		done()
	})
	controller.Forward()
}
