package animation

import "math"

// SpringDescription describes a damped spring.
type SpringDescription struct {
	Mass      float64
	Stiffness float64
	// DampingRatio is 1 for critical damping; below 1 the spring overshoots.
	DampingRatio float64
}

// IOSSpring returns the critically damped spring used for overscroll
// bounce-back.
func IOSSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 180, DampingRatio: 1}
}

// SpringSimulation integrates a spring from a start position and velocity
// toward a target.
type SpringSimulation struct {
	spring   SpringDescription
	position float64
	velocity float64
	target   float64
}

// NewSpringSimulation creates a simulation starting at position with the
// given velocity.
func NewSpringSimulation(spring SpringDescription, position, velocity, target float64) *SpringSimulation {
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	return &SpringSimulation{spring: spring, position: position, velocity: velocity, target: target}
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// Target returns the rest position.
func (s *SpringSimulation) Target() float64 { return s.target }

// SetTarget moves the rest position without resetting velocity.
func (s *SpringSimulation) SetTarget(target float64) { s.target = target }

// Step advances the simulation by dt seconds and reports whether the
// spring has come to rest. At rest the position snaps to the target.
func (s *SpringSimulation) Step(dt float64) bool {
	const substep = 0.004
	k := s.spring.Stiffness
	c := 2 * s.spring.DampingRatio * math.Sqrt(k*s.spring.Mass)
	for dt > 0 {
		h := math.Min(dt, substep)
		dt -= h
		x := s.position - s.target
		accel := (-k*x - c*s.velocity) / s.spring.Mass
		s.velocity += accel * h
		s.position += s.velocity * h
	}
	if math.Abs(s.position-s.target) < 0.5 && math.Abs(s.velocity) < 5 {
		s.position = s.target
		s.velocity = 0
		return true
	}
	return false
}
