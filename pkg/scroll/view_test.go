package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/refresh/pkg/animation"
	"github.com/go-drift/refresh/pkg/graphics"
)

type frameClock struct {
	now time.Time
}

func (c *frameClock) Now() time.Time { return c.now }

func useFrameClock(t *testing.T) *frameClock {
	t.Helper()
	clk := &frameClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

// settle steps ballistics at 60fps until the view rests.
func settle(t *testing.T, clk *frameClock, v *View) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if !v.IsDecelerating() {
			return
		}
		clk.now = clk.now.Add(16 * time.Millisecond)
		StepBallistics()
	}
	t.Fatal("view did not come to rest")
}

func newTestView(t *testing.T) *View {
	t.Helper()
	v := NewView(graphics.Size{Width: 320, Height: 480})
	v.SetContentSize(graphics.Size{Width: 320, Height: 2000})
	t.Cleanup(v.StopBallistic)
	return v
}

func TestView_Extents(t *testing.T) {
	v := newTestView(t)
	v.SetPhysics(ClampingPhysics{})
	assert.Equal(t, 0.0, v.MinScrollOffset())
	assert.Equal(t, 1520.0, v.MaxScrollOffset())

	v.SetContentInset(graphics.EdgeInsets{Top: 64, Bottom: 10})
	assert.Equal(t, -64.0, v.MinScrollOffset())
	assert.Equal(t, 1530.0, v.MaxScrollOffset())

	v.SetContentSize(graphics.Size{Height: 100})
	assert.Equal(t, -64.0, v.MaxScrollOffset(), "short content rests at the top")
}

func TestView_ListenerReceivesDragFlags(t *testing.T) {
	useFrameClock(t)
	v := newTestView(t)

	var events []OffsetEvent
	remove := v.AddOffsetListener(func(ev OffsetEvent) { events = append(events, ev) })
	defer remove()

	v.BeginDrag()
	v.SetContentOffset(graphics.Offset{Y: -40})
	require.Len(t, events, 1)
	assert.True(t, events[0].Dragging)
	assert.False(t, events[0].Decelerating)
	assert.Equal(t, -40.0, events[0].Offset.Y)

	v.EndDrag(0)
	require.Len(t, events, 2)
	last := events[1]
	assert.True(t, last.DragEnded)
	assert.False(t, last.Dragging)
	assert.True(t, last.Decelerating, "overscrolled release springs back")
}

func TestView_EndDragPublishesWithoutMovement(t *testing.T) {
	v := newTestView(t)
	var events []OffsetEvent
	v.AddOffsetListener(func(ev OffsetEvent) { events = append(events, ev) })

	v.BeginDrag()
	v.EndDrag(0)
	require.Len(t, events, 1)
	assert.True(t, events[0].DragEnded)
	assert.False(t, events[0].Decelerating)

	v.EndDrag(0)
	assert.Len(t, events, 1, "EndDrag without a drag is ignored")
}

func TestView_RemoveListener(t *testing.T) {
	v := newTestView(t)
	calls := 0
	remove := v.AddOffsetListener(func(OffsetEvent) { calls++ })
	assert.Equal(t, 1, v.ListenerCount())

	v.SetContentOffset(graphics.Offset{Y: 10})
	remove()
	remove()
	v.SetContentOffset(graphics.Offset{Y: 20})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, v.ListenerCount())
}

func TestView_BouncingDragAddsResistance(t *testing.T) {
	v := newTestView(t)
	v.BeginDrag()
	v.Drag(50)
	first := -v.ContentOffset().Y
	assert.InDelta(t, 50, first, 1e-9, "first pull starts at the edge with no overscroll")

	v.Drag(50)
	second := -v.ContentOffset().Y - first
	assert.Less(t, second, 50.0, "pulling further is resisted")
	assert.Greater(t, second, 0.0)
}

func TestView_OverscrollIsCapped(t *testing.T) {
	v := newTestView(t)
	v.BeginDrag()
	for i := 0; i < 200; i++ {
		v.Drag(100)
	}
	limit := graphics.Clamp(480*0.35, 80, 220)
	assert.InDelta(t, -limit, v.ContentOffset().Y, 1e-9)
}

func TestView_ClampingPhysicsStopsAtEdge(t *testing.T) {
	v := newTestView(t)
	v.SetPhysics(ClampingPhysics{})
	v.BeginDrag()
	v.Drag(100)
	assert.Equal(t, 0.0, v.ContentOffset().Y)
	v.EndDrag(0)
	assert.False(t, v.IsDecelerating())
}

func TestView_SpringsBackAfterRelease(t *testing.T) {
	clk := useFrameClock(t)
	v := newTestView(t)

	var last OffsetEvent
	v.AddOffsetListener(func(ev OffsetEvent) { last = ev })

	v.BeginDrag()
	v.SetContentOffset(graphics.Offset{Y: -90})
	v.EndDrag(0)
	require.True(t, v.IsDecelerating())
	require.True(t, HasActiveBallistics())

	settle(t, clk, v)
	assert.Equal(t, 0.0, v.ContentOffset().Y)
	assert.False(t, last.Decelerating, "final sample reports rest")
	assert.False(t, HasActiveBallistics())
}

func TestView_SpringFollowsNewInset(t *testing.T) {
	clk := useFrameClock(t)
	v := newTestView(t)

	v.BeginDrag()
	v.SetContentOffset(graphics.Offset{Y: -90})
	v.EndDrag(0)
	v.SetContentInset(graphics.EdgeInsetsTop(64))

	settle(t, clk, v)
	assert.Equal(t, -64.0, v.ContentOffset().Y)
}

func TestView_SetContentInsetSettlesRestingContent(t *testing.T) {
	clk := useFrameClock(t)
	v := newTestView(t)
	v.SetContentInset(graphics.EdgeInsetsTop(64))
	v.SetContentOffset(graphics.Offset{Y: -64})

	v.SetContentInset(graphics.EdgeInsets{})
	require.True(t, v.IsDecelerating())
	settle(t, clk, v)
	assert.Equal(t, 0.0, v.ContentOffset().Y)

	v.SetPhysics(ClampingPhysics{})
	v.SetContentInset(graphics.EdgeInsetsTop(64))
	v.SetContentOffset(graphics.Offset{Y: -64})
	v.SetContentInset(graphics.EdgeInsets{})
	assert.Equal(t, 0.0, v.ContentOffset().Y, "clamping physics snaps")
}

func TestView_SetContentInsetLeavesDragAlone(t *testing.T) {
	v := newTestView(t)
	v.BeginDrag()
	v.SetContentOffset(graphics.Offset{Y: -80})
	v.SetContentInset(graphics.EdgeInsetsTop(16))
	assert.Equal(t, -80.0, v.ContentOffset().Y)
	assert.False(t, v.IsDecelerating())
}

func TestView_FlingDecelerates(t *testing.T) {
	clk := useFrameClock(t)
	v := newTestView(t)
	v.SetContentOffset(graphics.Offset{Y: 500})

	v.BeginDrag()
	v.EndDrag(1500)
	require.True(t, v.IsDecelerating())
	settle(t, clk, v)

	assert.Greater(t, v.ContentOffset().Y, 500.0)
	assert.LessOrEqual(t, v.ContentOffset().Y, v.MaxScrollOffset())
}

func TestView_StartBallisticIgnoresNaN(t *testing.T) {
	v := newTestView(t)
	v.StartBallistic(math.NaN())
	assert.False(t, v.IsDecelerating())
}

func TestView_ScrollRectToVisible(t *testing.T) {
	v := newTestView(t)
	v.SetContentOffset(graphics.Offset{Y: 300})

	v.ScrollRectToVisible(graphics.RectFromLTWH(0, 0, 1, 1), false)
	assert.Equal(t, 0.0, v.ContentOffset().Y)

	v.ScrollRectToVisible(graphics.RectFromLTWH(0, 900, 1, 100), false)
	assert.Equal(t, 520.0, v.ContentOffset().Y)

	v.ScrollRectToVisible(graphics.RectFromLTWH(0, 600, 1, 10), false)
	assert.Equal(t, 520.0, v.ContentOffset().Y, "visible rect does not move")
}

func TestView_ScrollRectToVisibleDuringDrag(t *testing.T) {
	v := newTestView(t)
	v.SetContentInset(graphics.EdgeInsetsTop(64))
	v.BeginDrag()
	v.SetContentOffset(graphics.Offset{Y: -100})

	v.ScrollRectToVisible(graphics.RectFromLTWH(0, 0, 1, 1), false)
	assert.Equal(t, -100.0, v.ContentOffset().Y, "top row is already visible")
}

func TestView_ScrollRectToVisibleAnimatedJumps(t *testing.T) {
	v := newTestView(t)
	v.SetContentOffset(graphics.Offset{Y: 300})

	v.ScrollRectToVisible(graphics.RectFromLTWH(0, 0, 1, 1), true)
	assert.Equal(t, 0.0, v.ContentOffset().Y)
	assert.False(t, v.IsDecelerating(), "no spring is started")
}
