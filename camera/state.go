package camera

import "math"

// State describes the viewport of a 2D rendering surface at an instant:
// a position, a rotation and a zoom scale.
type State struct {
	X     float64 // horizontal offset of the camera position
	Y     float64 // vertical offset of the camera position
	Angle float64 // rotation in radians
	Ratio float64 // zoom scale; smaller values are closer
}

// DefaultState is the state every new camera starts from.
func DefaultState() State {
	return State{X: 0, Y: 0, Angle: 0, Ratio: 1}
}

// Partial selects a subset of state fields for an update or an animation
// target. Nil fields are left untouched, both by SetState and by every
// interpolation frame of Animate.
type Partial struct {
	X     *float64
	Y     *float64
	Angle *float64
	Ratio *float64
}

// Float64 returns a pointer to v, for building Partial values inline.
func Float64(v float64) *float64 {
	return &v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
