package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/refresh/pkg/animation"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/platform"
	"github.com/go-drift/refresh/pkg/scroll"
)

const (
	// DefaultTestWidth is the default viewport width of the test scroll view.
	DefaultTestWidth = 320
	// DefaultTestHeight is the default viewport height of the test scroll view.
	DefaultTestHeight = 480
	// DefaultContentHeight is the default height of the scrollable content.
	DefaultContentHeight = 2000
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: work still pending")

// Tester plays the host's UI thread in tests. It installs a fake animation
// clock and a dispatch queue, owns a scroll view, and advances frames on
// demand. The calling goroutine is the UI thread.
type Tester struct {
	clock     *FakeClock
	prevClock animation.Clock
	queue     platform.Queue
	view      *scroll.View
}

// NewTester creates a tester with a default scroll view. Call Cleanup when
// done, or use NewTesterWithT instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	t := &Tester{
		clock: clk,
		view:  scroll.NewView(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
	}
	t.view.SetContentSize(graphics.Size{Width: DefaultTestWidth, Height: DefaultContentHeight})
	t.prevClock = animation.SetClock(clk)
	platform.RegisterDispatch(t.Dispatch)
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup().
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops pending motion and restores the global clock and
// dispatcher.
func (t *Tester) Cleanup() {
	t.view.StopBallistic()
	platform.RegisterDispatch(nil)
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// ScrollView returns the scroll view the tester drives.
func (t *Tester) ScrollView() *scroll.View {
	return t.view
}

// Dispatch queues a callback for the next frame, like a host's UI thread.
func (t *Tester) Dispatch(fn func()) {
	t.queue.Post(fn)
}

// Pending returns the number of queued dispatches.
func (t *Tester) Pending() int {
	return t.queue.Len()
}

// Pump runs a single frame: queued dispatches, scroll deceleration, then
// animation tickers. The clock is not advanced.
func (t *Tester) Pump() error {
	t.queue.Drain()
	scroll.StepBallistics()
	animation.StepTickers()
	return nil
}

// PumpFrames advances the clock and pumps n times.
func (t *Tester) PumpFrames(n int) error {
	for i := 0; i < n; i++ {
		t.clock.Advance(FrameDuration)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle runs frames until no work is pending or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *Tester) needsWork() bool {
	return animation.HasActiveTickers() ||
		scroll.HasActiveBallistics() ||
		t.queue.Len() > 0
}
