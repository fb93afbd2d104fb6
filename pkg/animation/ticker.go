// Package animation provides the frame-driven timing primitives used by the
// refresh control and the scroll container.
//
// # Core Components
//
//   - [Clock]: the time source. Tests swap in a fake clock with [SetClock].
//
//   - [Ticker]: a per-frame callback. Hosts advance every active ticker once
//     per frame by calling [StepTickers] from their UI thread.
//
//   - [AnimationController]: drives a value from 0 to 1 over a duration
//     through an easing curve and reports when it completes.
//
// # Frame Loop
//
// Nothing in this package starts goroutines. A host owns the frame loop:
//
//	for range frameTicker.C {
//	    dispatchOnUIThread(func() {
//	        scroll.StepBallistics()
//	        animation.StepTickers()
//	        redraw()
//	    })
//	}
package animation

import (
	"slices"
	"sync"
	"time"
)

// Clock provides time for animations. The default implementation uses
// system time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = realClock{}
)

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it during cleanup. Passing nil restores system time.
func SetClock(c Clock) Clock {
	if c == nil {
		c = realClock{}
	}
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}

var (
	tickerMu      sync.Mutex
	activeTickers []*Ticker
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start. Tickers are stepped in
// the order they were started, so animations started earlier observe each
// frame first.
type Ticker struct {
	callback func(elapsed time.Duration)
	active   bool
	start    time.Time
}

// NewTicker creates a new, inactive ticker.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers = append(activeTickers, t)
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	tickerMu.Lock()
	if i := slices.Index(activeTickers, t); i >= 0 {
		activeTickers = slices.Delete(activeTickers, i, i+1)
	}
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.active
}

// Elapsed returns the time since the ticker started, or 0 when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers. Call once per frame from the UI
// thread.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Callbacks may start or stop tickers.
	tickers := slices.Clone(activeTickers)
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.active && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
