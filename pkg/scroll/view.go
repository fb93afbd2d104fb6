// Package scroll provides a headless vertical scroll container.
//
// [View] owns the scroll state a pull-to-refresh control needs to observe:
// the content offset, the content inset, and whether the user is dragging or
// the content is decelerating. Hosts feed it pointer input (BeginDrag,
// ApplyUserOffset, EndDrag) and render whatever window of content the offset
// selects.
//
// # Observing the Offset
//
// Every offset change is published to listeners registered with
// AddOffsetListener, together with the drag flags at that instant:
//
//	remove := view.AddOffsetListener(func(ev scroll.OffsetEvent) {
//	    fmt.Println(ev.Offset.Y, ev.Dragging, ev.Decelerating)
//	})
//	defer remove()
//
// # Physics
//
// [BouncingPhysics] (default) lets the user pull past the edges with rising
// resistance and springs back on release. [ClampingPhysics] stops at the
// edges.
package scroll

import (
	"math"

	"github.com/go-drift/refresh/pkg/graphics"
)

// OffsetEvent is one scroll position sample.
type OffsetEvent struct {
	// Offset is the new content offset. Negative Y means pulled down past
	// the top of the content.
	Offset graphics.Offset
	// Dragging is true while a pointer is moving the content.
	Dragging bool
	// Decelerating is true while the content moves on its own after a drag.
	Decelerating bool
	// DragEnded marks the sample published when the pointer lifts.
	DragEnded bool
}

type offsetListener struct {
	id int
	fn func(OffsetEvent)
}

// View is a vertical scroll container. It is not safe for concurrent use;
// drive it from the UI thread.
type View struct {
	offset         graphics.Offset
	inset          graphics.EdgeInsets
	viewport       graphics.Size
	content        graphics.Size
	physics        Physics
	dragging       bool
	ballistic      *ballisticState
	listeners      []offsetListener
	nextListenerID int
}

// NewView creates a scroll view with the given viewport and bouncing physics.
func NewView(viewport graphics.Size) *View {
	return &View{
		viewport: viewport,
		physics:  BouncingPhysics{},
	}
}

// ContentOffset returns the current content offset.
func (v *View) ContentOffset() graphics.Offset {
	return v.offset
}

// SetContentOffset moves the content to offset without physics and
// publishes the change. The current drag flags are reported unchanged.
func (v *View) SetContentOffset(offset graphics.Offset) {
	v.setOffset(offset.Y, false)
}

// ContentInset returns the current content inset.
func (v *View) ContentInset() graphics.EdgeInsets {
	return v.inset
}

// SetContentInset replaces the content inset. When the content is resting
// outside the new extents it springs back (bouncing physics) or snaps
// (clamping physics); a drag in progress is left alone.
func (v *View) SetContentInset(insets graphics.EdgeInsets) {
	v.inset = insets
	if v.dragging || v.ballistic != nil {
		return
	}
	v.settle()
}

// ViewportSize returns the visible area size.
func (v *View) ViewportSize() graphics.Size {
	return v.viewport
}

// SetViewportSize updates the visible area size.
func (v *View) SetViewportSize(size graphics.Size) {
	v.viewport = size
	if !v.dragging && v.ballistic == nil {
		v.settle()
	}
}

// ContentSize returns the size of the scrollable content.
func (v *View) ContentSize() graphics.Size {
	return v.content
}

// SetContentSize updates the size of the scrollable content.
func (v *View) SetContentSize(size graphics.Size) {
	v.content = size
	if !v.dragging && v.ballistic == nil {
		v.settle()
	}
}

// Physics returns the active scroll physics.
func (v *View) Physics() Physics {
	return v.physics
}

// SetPhysics replaces the scroll physics. Nil selects BouncingPhysics.
func (v *View) SetPhysics(physics Physics) {
	if physics == nil {
		physics = BouncingPhysics{}
	}
	v.physics = physics
}

// MinScrollOffset is the resting offset at the top edge: the negated top
// inset.
func (v *View) MinScrollOffset() float64 {
	return -v.inset.Top
}

// MaxScrollOffset is the resting offset at the bottom edge. It is never
// smaller than MinScrollOffset.
func (v *View) MaxScrollOffset() float64 {
	max := v.content.Height - v.viewport.Height + v.inset.Bottom
	return math.Max(max, v.MinScrollOffset())
}

// IsDragging reports whether a pointer is moving the content.
func (v *View) IsDragging() bool {
	return v.dragging
}

// IsDecelerating reports whether the content is moving on its own.
func (v *View) IsDecelerating() bool {
	return v.ballistic != nil
}

// BeginDrag marks the start of a pointer drag and halts any deceleration.
func (v *View) BeginDrag() {
	v.StopBallistic()
	v.dragging = true
}

// ApplyUserOffset moves the content by delta offset units, shaped by the
// physics. Positive delta scrolls toward the end of the content.
func (v *View) ApplyUserOffset(delta float64) {
	adjusted := v.physics.ApplyPhysicsToUserOffset(v, delta)
	proposed := v.offset.Y + adjusted
	proposed -= v.physics.ApplyBoundaryConditions(v, proposed)
	v.setOffset(proposed, true)
}

// Drag moves the content with a pointer delta: a positive delta drags the
// content down, pulling it past the top edge.
func (v *View) Drag(pointerDelta float64) {
	v.ApplyUserOffset(-pointerDelta)
}

// EndDrag lifts the pointer. velocity is in offset units per second
// (positive scrolls toward the end). The release is always published, with
// DragEnded set, even when the offset does not change.
func (v *View) EndDrag(velocity float64) {
	if !v.dragging {
		return
	}
	v.dragging = false
	v.StartBallistic(velocity)
	v.notify(true)
}

// ScrollRectToVisible scrolls the minimum distance needed to show rect
// (in content coordinates). Nothing moves when rect is already visible.
// The target is kept within the scroll extents unless a drag is in progress.
// The view always jumps; animated is accepted for Container and ignored.
func (v *View) ScrollRectToVisible(rect graphics.Rect, _ bool) {
	top := v.offset.Y
	bottom := top + v.viewport.Height
	target := top
	switch {
	case rect.Top < top:
		target = rect.Top
	case rect.Bottom > bottom:
		target = rect.Bottom - v.viewport.Height
	default:
		return
	}
	if !v.dragging {
		target = graphics.Clamp(target, v.MinScrollOffset(), v.MaxScrollOffset())
	}
	v.StopBallistic()
	v.setOffset(target, false)
}

// AddOffsetListener registers fn for offset samples and returns the
// function that removes it. Removing twice is harmless.
func (v *View) AddOffsetListener(fn func(OffsetEvent)) func() {
	if fn == nil {
		return func() {}
	}
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners = append(v.listeners, offsetListener{id: id, fn: fn})
	return func() {
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered offset listeners.
func (v *View) ListenerCount() int {
	return len(v.listeners)
}

// settle brings a resting offset back inside the extents.
func (v *View) settle() {
	if !v.isOverscrolled() {
		return
	}
	if isBouncing(v.physics) {
		v.StartBallistic(0)
		return
	}
	v.setOffset(graphics.Clamp(v.offset.Y, v.MinScrollOffset(), v.MaxScrollOffset()), false)
}

func (v *View) setOffset(y float64, user bool) {
	if user {
		y = v.clampOffset(y)
	}
	if y == v.offset.Y {
		return
	}
	v.offset.Y = y
	v.notify(false)
}

func (v *View) notify(dragEnded bool) {
	ev := OffsetEvent{
		Offset:       v.offset,
		Dragging:     v.dragging,
		Decelerating: v.ballistic != nil,
		DragEnded:    dragEnded,
	}
	// Listeners may remove themselves.
	listeners := append([]offsetListener(nil), v.listeners...)
	for _, l := range listeners {
		l.fn(ev)
	}
}

func (v *View) clampOffset(y float64) float64 {
	if !isBouncing(v.physics) {
		return graphics.Clamp(y, v.MinScrollOffset(), v.MaxScrollOffset())
	}
	limit := graphics.Clamp(v.viewportExtent()*0.35, 80, 220)
	return graphics.Clamp(y, v.MinScrollOffset()-limit, v.MaxScrollOffset()+limit)
}

func (v *View) viewportExtent() float64 {
	if v.viewport.Height > 0 {
		return v.viewport.Height
	}
	return 600
}

func (v *View) isOverscrolled() bool {
	return v.offset.Y < v.MinScrollOffset() || v.offset.Y > v.MaxScrollOffset()
}
