package scroll

// Physics determines how user drags map onto the content offset.
type Physics interface {
	ApplyPhysicsToUserOffset(view *View, delta float64) float64
	ApplyBoundaryConditions(view *View, value float64) float64
}

// ClampingPhysics stops the content at its edges.
type ClampingPhysics struct{}

// ApplyPhysicsToUserOffset returns the raw delta.
func (ClampingPhysics) ApplyPhysicsToUserOffset(_ *View, delta float64) float64 {
	return delta
}

// ApplyBoundaryConditions returns how far value lies past the extents.
func (ClampingPhysics) ApplyBoundaryConditions(view *View, value float64) float64 {
	if min := view.MinScrollOffset(); value < min {
		return value - min
	}
	if max := view.MaxScrollOffset(); value > max {
		return value - max
	}
	return 0
}

// BouncingPhysics lets the content travel past its edges with increasing
// resistance.
type BouncingPhysics struct{}

// ApplyPhysicsToUserOffset reduces delta while overscrolling.
func (BouncingPhysics) ApplyPhysicsToUserOffset(view *View, delta float64) float64 {
	offset := view.offset.Y
	min, max := view.MinScrollOffset(), view.MaxScrollOffset()
	if (offset <= min && delta < 0) || (offset >= max && delta > 0) {
		overscroll := 0.0
		if offset < min {
			overscroll = min - offset
		} else if offset > max {
			overscroll = offset - max
		}
		fraction := overscroll / view.viewportExtent()
		resistance := 1.0 / (1.0 + 2.4*fraction)
		if resistance < 0.12 {
			resistance = 0.12
		}
		return delta * resistance
	}
	return delta
}

// ApplyBoundaryConditions allows overscroll; View caps the distance.
func (BouncingPhysics) ApplyBoundaryConditions(_ *View, _ float64) float64 {
	return 0
}

func isBouncing(physics Physics) bool {
	switch physics.(type) {
	case BouncingPhysics, *BouncingPhysics:
		return true
	default:
		return false
	}
}
