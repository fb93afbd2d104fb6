package refresh

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/scroll"
)

// fakeContainer records inset writes and lets tests emit offset samples.
type fakeContainer struct {
	offset      graphics.Offset
	inset       graphics.EdgeInsets
	insetWrites []graphics.EdgeInsets
	scrollCalls []graphics.Rect
	listeners   map[int]func(scroll.OffsetEvent)
	nextID      int
	removals    int
}

func newFakeContainer(inset graphics.EdgeInsets) *fakeContainer {
	return &fakeContainer{inset: inset, listeners: make(map[int]func(scroll.OffsetEvent))}
}

func (f *fakeContainer) ContentOffset() graphics.Offset { return f.offset }
func (f *fakeContainer) ContentInset() graphics.EdgeInsets { return f.inset }

func (f *fakeContainer) SetContentInset(insets graphics.EdgeInsets) {
	f.inset = insets
	f.insetWrites = append(f.insetWrites, insets)
}

func (f *fakeContainer) ScrollRectToVisible(rect graphics.Rect, _ bool) {
	f.scrollCalls = append(f.scrollCalls, rect)
}

func (f *fakeContainer) AddOffsetListener(fn func(scroll.OffsetEvent)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		if _, ok := f.listeners[id]; ok {
			delete(f.listeners, id)
			f.removals++
		}
	}
}

func (f *fakeContainer) emit(ev scroll.OffsetEvent) {
	f.offset = ev.Offset
	for _, fn := range f.listeners {
		fn(ev)
	}
}

// drag emits a dragging sample at raw offset y.
func (f *fakeContainer) drag(y float64) {
	f.emit(scroll.OffsetEvent{Offset: graphics.Offset{Y: y}, Dragging: true})
}

// release emits the drag-end sample at the current offset.
func (f *fakeContainer) release() {
	f.emit(scroll.OffsetEvent{Offset: f.offset, DragEnded: true, Decelerating: f.offset.Y < 0})
}

// recordingDelegate logs every callback in order.
type recordingDelegate struct {
	refuse       bool
	lastUpdated  time.Time
	lastUpdatedN int
	insets       []graphics.EdgeInsets
	log          []string
	onStart      func(c *Control)
	onFinish     func(c *Control)
}

func (d *recordingDelegate) ShouldStartRefreshing(*Control) bool {
	d.log = append(d.log, "should-start")
	return !d.refuse
}

func (d *recordingDelegate) DidStartRefreshing(c *Control) {
	d.log = append(d.log, "did-start")
	if d.onStart != nil {
		d.onStart(c)
	}
}

func (d *recordingDelegate) DidFinishRefreshing(c *Control) {
	d.log = append(d.log, "did-finish")
	if d.onFinish != nil {
		d.onFinish(c)
	}
}

func (d *recordingDelegate) LastUpdatedAt(*Control) (time.Time, bool) {
	d.lastUpdatedN++
	return d.lastUpdated, !d.lastUpdated.IsZero()
}

func (d *recordingDelegate) DidUpdateContentInset(_ *Control, inset graphics.EdgeInsets) {
	d.insets = append(d.insets, inset)
	d.log = append(d.log, fmt.Sprintf("inset %v", inset.Top))
}

func (d *recordingDelegate) WillTransition(_ *Control, to, from State, animated bool) {
	d.log = append(d.log, fmt.Sprintf("will %s<-%s %t", to, from, animated))
}

func (d *recordingDelegate) DidTransition(_ *Control, to, from State, animated bool) {
	d.log = append(d.log, fmt.Sprintf("did %s<-%s %t", to, from, animated))
}

func (d *recordingDelegate) reset() {
	d.log = nil
	d.insets = nil
	d.lastUpdatedN = 0
}

// recordingView is a ContentView that keeps everything it is told.
type recordingView struct {
	states      []State
	progress    float64
	lastUpdated time.Time
	detached    int
	animations  []float64
}

func (v *recordingView) SetState(s State) { v.states = append(v.states, s) }
func (v *recordingView) SetProgress(p float64) { v.progress = p }
func (v *recordingView) SetLastUpdatedAt(t time.Time) { v.lastUpdated = t }
func (v *recordingView) Render(int) string { return "" }
func (v *recordingView) Detach() { v.detached++ }

func (v *recordingView) AnimateTransition(_, _ State, t float64) {
	v.animations = append(v.animations, t)
}

// captureHandler collects reported errors instead of logging them.
type captureHandler struct {
	errs   []*errors.RefreshError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.RefreshError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

// failingContainer panics on its next failures inset writes.
type failingContainer struct {
	*fakeContainer
	failures int
}

func (f *failingContainer) SetContentInset(insets graphics.EdgeInsets) {
	if f.failures > 0 {
		f.failures--
		panic("inset write failed")
	}
	f.fakeContainer.SetContentInset(insets)
}
