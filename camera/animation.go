package camera

import (
	"time"

	"github.com/automoto/camera2d/frame"
	"github.com/tanema/gween"
)

// animation records one in-flight transition: the snapshot it started from,
// the requested target, and the scheduling token of its next frame. Each
// Camera owns at most one, replaced wholesale when a new Animate call
// supersedes it.
type animation struct {
	initial State
	target  Partial
	tween   *gween.Tween // progress 0..1, shaped by the easing curve
	last    time.Time    // previous tick, for the frame delta
	token   frame.Token
	onDone  func()
}

// at returns the interpolated partial at progress coefficient k, touching
// only the fields present in the target.
func (a *animation) at(k float64) Partial {
	var p Partial
	if a.target.X != nil {
		p.X = Float64(a.initial.X + (*a.target.X-a.initial.X)*k)
	}
	if a.target.Y != nil {
		p.Y = Float64(a.initial.Y + (*a.target.Y-a.initial.Y)*k)
	}
	if a.target.Angle != nil {
		p.Angle = Float64(a.initial.Angle + (*a.target.Angle-a.initial.Angle)*k)
	}
	if a.target.Ratio != nil {
		p.Ratio = Float64(a.initial.Ratio + (*a.target.Ratio-a.initial.Ratio)*k)
	}
	return p
}
