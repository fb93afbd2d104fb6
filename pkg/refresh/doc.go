// Package refresh implements a pull-to-refresh control for scroll
// containers.
//
// A [Control] attaches to any [Container] (a [scroll.View] satisfies the
// interface) and watches its content offset. Pulling the content past the
// expanded height arms the control; letting go starts a refresh, reserves
// room for the header by growing the container's top content inset, and
// tells the [Delegate]. The host calls FinishRefreshing when its data is
// loaded.
//
//	view := scroll.NewView(graphics.Size{Width: 320, Height: 480})
//	control := refresh.Attach(view, refresh.DelegateFuncs{
//	    OnDidStartRefreshing: func(c *refresh.Control) {
//	        go load(func() {
//	            platform.Dispatch(func() { c.FinishRefreshing(true, nil) })
//	        })
//	    },
//	}, nil)
//	defer control.Detach()
//
// # Threading
//
// Offset samples, inset writes and delegate callbacks all happen on the
// host's UI thread. Animated transitions wait for each other in a FIFO
// [Gate] and resume through platform.Dispatch, so hosts register their UI
// thread scheduler there and step animation.StepTickers and
// scroll.StepBallistics once per frame.
//
// # Content Views
//
// The header is drawn by a [ContentView]. [DefaultContentView] shows a
// status line, the last-updated time and a spinner; [SimpleContentView]
// shows only a centered spinner while loading.
package refresh
