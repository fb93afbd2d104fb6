package refresh

import (
	"math"

	"github.com/go-drift/refresh/pkg/scroll"
)

// handleOffset turns one offset sample into progress updates and
// transitions.
func (c *Control) handleOffset(ev scroll.OffsetEvent) {
	if !c.attached {
		return
	}
	h := c.expandedHeight
	y := ev.Offset.Y + c.defaultContentInsets.Top

	if ev.Dragging {
		switch c.state {
		case StateReady:
			c.setProgress(y)
			if c.settled() && y > -h && y < 0 {
				c.transition(false, nil, step{to: StateClosed})
			}
		case StateClosed:
			c.setProgress(y)
			if c.settled() && y < -h {
				c.transition(false, nil, step{to: StateReady})
			}
		case StateRefreshing:
			adjustment := h
			if y < 0 {
				adjustment = math.Max(0, h+y)
			}
			c.applyTopInset(h - adjustment)
		}
		return
	}

	if ev.Decelerating {
		c.setProgress(y)
	}

	released := ev.DragEnded || !ev.Decelerating
	if !released || c.state != StateReady || !c.settled() {
		return
	}

	start := false
	c.callDelegate("ShouldStartRefreshing", func(d Delegate) { start = d.ShouldStartRefreshing(c) })
	if start {
		c.transition(true, nil, step{to: StateRefreshing, expand: true})
		return
	}
	c.transition(true, nil, step{to: StateClosed})
}

// settled reports whether no requested transition is still outstanding.
func (c *Control) settled() bool {
	return c.target == c.state
}

func (c *Control) setProgress(y float64) {
	if c.expandedHeight == 0 {
		c.progress = 0
	} else {
		c.progress = -y / c.expandedHeight
	}
	if c.contentView != nil {
		c.contentView.SetProgress(c.progress)
	}
}
