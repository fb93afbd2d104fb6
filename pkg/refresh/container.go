package refresh

import (
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/scroll"
)

// Container is the scrollable view a Control attaches to.
type Container interface {
	ContentOffset() graphics.Offset
	ContentInset() graphics.EdgeInsets
	SetContentInset(insets graphics.EdgeInsets)
	ScrollRectToVisible(rect graphics.Rect, animated bool)
	// AddOffsetListener subscribes to offset samples and returns the
	// function that unsubscribes.
	AddOffsetListener(fn func(scroll.OffsetEvent)) func()
}

var _ Container = (*scroll.View)(nil)
