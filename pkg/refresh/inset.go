package refresh

import "github.com/go-drift/refresh/pkg/graphics"

// applyTopInset records d as the control's share of the top inset and
// writes default+d to the container when it differs.
func (c *Control) applyTopInset(d float64) {
	c.topInset = d

	insets := c.defaultContentInsets
	insets.Top += d

	if c.container == nil {
		return
	}
	if c.container.ContentInset().Equal(insets) {
		return
	}
	c.container.SetContentInset(insets)

	// Keep the first row in place when the content is at the top.
	if c.container.ContentOffset().Y <= 0 {
		c.container.ScrollRectToVisible(graphics.RectFromLTWH(0, 0, 1, 1), false)
	}

	inset := c.container.ContentInset()
	c.callDelegate("DidUpdateContentInset", func(d Delegate) { d.DidUpdateContentInset(c, inset) })
}

func (c *Control) setExpanded(expanded bool) {
	c.isExpanded = expanded
	if expanded {
		c.applyTopInset(c.expandedHeight)
		return
	}
	c.applyTopInset(0)
}
