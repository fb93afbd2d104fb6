package scroll

import (
	"math"
	"sync"
	"time"

	"github.com/go-drift/refresh/pkg/animation"
	"github.com/go-drift/refresh/pkg/graphics"
)

// StartBallistic lets the content move on its own with velocity (offset
// units per second). An overscrolled view always springs back to its edge;
// otherwise slow velocities leave the content where it is.
func (v *View) StartBallistic(velocity float64) {
	v.StopBallistic()
	velocity = v.normalizeBallisticVelocity(velocity)
	if !v.isOverscrolled() && math.Abs(velocity) < 5 {
		return
	}
	if v.isOverscrolled() && !isBouncing(v.physics) {
		v.setOffset(graphics.Clamp(v.offset.Y, v.MinScrollOffset(), v.MaxScrollOffset()), false)
		return
	}
	v.ballistic = newBallisticState(v, velocity)
	registerBallistic(v)
}

// StopBallistic halts any deceleration in progress.
func (v *View) StopBallistic() {
	if v.ballistic != nil {
		unregisterBallistic(v)
		v.ballistic = nil
	}
}

func (v *View) normalizeBallisticVelocity(velocity float64) float64 {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0
	}
	velocity *= 0.9
	maxAbs := graphics.Clamp(v.viewportExtent()*5.4, 1080, 4500)
	return graphics.Clamp(velocity, -maxAbs, maxAbs)
}

type ballisticState struct {
	view     *View
	velocity float64
	lastTime time.Time
	spring   *animation.SpringSimulation
}

func newBallisticState(view *View, velocity float64) *ballisticState {
	b := &ballisticState{
		view:     view,
		velocity: velocity,
		lastTime: animation.Now(),
	}
	if view.isOverscrolled() {
		b.initSpring()
	}
	return b
}

// edge is the extent the content springs back to.
func (b *ballisticState) edge() float64 {
	v := b.view
	if v.offset.Y < v.MinScrollOffset() {
		return v.MinScrollOffset()
	}
	if v.offset.Y > v.MaxScrollOffset() {
		return v.MaxScrollOffset()
	}
	if b.spring != nil {
		// Already inside the extents; keep heading to the nearer edge.
		min, max := v.MinScrollOffset(), v.MaxScrollOffset()
		if math.Abs(v.offset.Y-min) <= math.Abs(v.offset.Y-max) {
			return min
		}
		return max
	}
	return v.offset.Y
}

func (b *ballisticState) initSpring() {
	b.spring = animation.NewSpringSimulation(
		animation.IOSSpring(),
		b.view.offset.Y,
		b.velocity,
		b.edge(),
	)
}

func (b *ballisticState) step(now time.Time) bool {
	if now.Before(b.lastTime) {
		b.lastTime = now
		return false
	}
	dt := now.Sub(b.lastTime).Seconds()
	b.lastTime = now
	if dt <= 0 {
		return false
	}
	const maxDt = 0.032
	if dt > maxDt {
		dt = maxDt
	}
	return b.advance(dt)
}

// advance moves the content by one frame and reports whether it has come
// to rest. Offset samples are published by the caller.
func (b *ballisticState) advance(dt float64) bool {
	v := b.view
	if b.spring == nil && v.isOverscrolled() && isBouncing(v.physics) {
		b.initSpring()
	}

	if b.spring != nil {
		// The extents can move under a running spring (a new content inset).
		b.spring.SetTarget(b.edge())
		done := b.spring.Step(dt)
		b.velocity = b.spring.Velocity()
		v.offset.Y = b.spring.Position()
		return done
	}

	velocity := b.velocity
	decel := 2200.0 + 0.385*math.Abs(velocity)
	if velocity > 0 {
		velocity = math.Max(0, velocity-decel*dt)
	} else if velocity < 0 {
		velocity = math.Min(0, velocity+decel*dt)
	}
	b.velocity = velocity
	v.offset.Y = v.clampOffset(v.offset.Y + velocity*dt)
	if !isBouncing(v.physics) && (v.offset.Y <= v.MinScrollOffset() || v.offset.Y >= v.MaxScrollOffset()) {
		return true
	}
	return math.Abs(velocity) < 5 && !v.isOverscrolled()
}

var (
	ballisticMu    sync.Mutex
	ballisticViews []*View
)

func registerBallistic(view *View) {
	ballisticMu.Lock()
	defer ballisticMu.Unlock()
	for _, v := range ballisticViews {
		if v == view {
			return
		}
	}
	ballisticViews = append(ballisticViews, view)
}

func unregisterBallistic(view *View) {
	ballisticMu.Lock()
	defer ballisticMu.Unlock()
	for i, v := range ballisticViews {
		if v == view {
			ballisticViews = append(ballisticViews[:i:i], ballisticViews[i+1:]...)
			return
		}
	}
}

// HasActiveBallistics reports whether any view is decelerating.
func HasActiveBallistics() bool {
	ballisticMu.Lock()
	defer ballisticMu.Unlock()
	return len(ballisticViews) > 0
}

// StepBallistics advances every decelerating view by one frame. A view
// that comes to rest publishes its final sample with Decelerating false.
func StepBallistics() {
	ballisticMu.Lock()
	if len(ballisticViews) == 0 {
		ballisticMu.Unlock()
		return
	}
	now := animation.Now()
	views := append([]*View(nil), ballisticViews...)
	ballisticMu.Unlock()

	for _, v := range views {
		if v.ballistic == nil {
			continue
		}
		before := v.offset.Y
		if v.ballistic.step(now) {
			v.StopBallistic()
			v.notify(false)
			continue
		}
		if v.offset.Y != before {
			v.notify(false)
		}
	}
}
