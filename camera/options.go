package camera

import (
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultDuration is the transition time used when Options leaves it unset.
const DefaultDuration = 150 * time.Millisecond

// DefaultZoomFactor is applied by Zoom when no factor is given.
const DefaultZoomFactor = 1.5

// Options configures a single Animate call. The zero value (and a nil
// pointer) selects all defaults.
type Options struct {
	// Duration is the total wall-clock time over which the transition is
	// interpolated. Zero means DefaultDuration; an instant change is a
	// SetState, not a zero-length animation.
	Duration time.Duration

	// Easing shapes the progress curve on [0,1]. Defaults to a quadratic
	// ease-in-out: accelerate through the first half, decelerate through
	// the second.
	Easing ease.TweenFunc
}

// merged fills unset options with defaults. Safe on a nil receiver.
func (o *Options) merged() Options {
	out := Options{Duration: DefaultDuration, Easing: ease.InOutQuad}
	if o == nil {
		return out
	}
	if o.Duration > 0 {
		out.Duration = o.Duration
	}
	if o.Easing != nil {
		out.Easing = o.Easing
	}
	return out
}
