// Package platform connects library code to the host's UI thread.
//
// Hosts own exactly one UI thread (a bubbletea Update loop, a tview
// application goroutine, a test's frame pump). Code that must run there
// schedules itself with [Dispatch]; the host installs the scheduler once
// with [RegisterDispatch].
package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function used to schedule callbacks on the UI
// thread. Passing nil unregisters the current dispatcher.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns false if no dispatcher is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// Queue is a FIFO of callbacks waiting for the UI thread. Any goroutine may
// Post; the UI thread calls Drain once per frame.
//
// A host that polls (a frame tick message, a test pump) registers
// q.Post with [RegisterDispatch] and drains it from its frame handler.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// Post appends a callback. Nil callbacks are ignored.
func (q *Queue) Post(callback func()) {
	if callback == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, callback)
	q.mu.Unlock()
}

// Drain runs every callback queued before the call, in order, and returns
// how many ran. Callbacks posted while draining wait for the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
