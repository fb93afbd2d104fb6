package refresh

import (
	"sync"

	"github.com/go-drift/refresh/pkg/platform"
)

// Gate runs animated transitions strictly one at a time, in request
// order. Acquire never blocks: a caller that finds the gate held parks its
// continuation, which runs once every earlier holder has released.
//
// Continuations run on the UI thread through platform.Dispatch, or inline
// when no dispatcher is registered.
type Gate struct {
	mu     sync.Mutex
	held   bool
	parked []func(release func())
}

// NewGate returns an available gate.
func NewGate() *Gate {
	return &Gate{}
}

// Acquire schedules fn to run while holding the gate. fn must eventually
// call release; calling it more than once has no further effect.
func (g *Gate) Acquire(fn func(release func())) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	if g.held {
		g.parked = append(g.parked, fn)
		g.mu.Unlock()
		return
	}
	g.held = true
	g.mu.Unlock()
	g.run(fn)
}

// Busy reports whether a continuation holds the gate.
func (g *Gate) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}

// Pending returns the number of parked continuations.
func (g *Gate) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.parked)
}

func (g *Gate) run(fn func(release func())) {
	var once sync.Once
	release := func() { once.Do(g.handOff) }
	body := func() { fn(release) }
	if !platform.Dispatch(body) {
		body()
	}
}

// handOff passes the gate to the oldest parked continuation, or frees it.
func (g *Gate) handOff() {
	g.mu.Lock()
	if len(g.parked) == 0 {
		g.held = false
		g.mu.Unlock()
		return
	}
	next := g.parked[0]
	g.parked[0] = nil
	g.parked = g.parked[1:]
	g.mu.Unlock()
	g.run(next)
}
