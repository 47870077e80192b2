// Package camera tracks pan/zoom/rotation state for a 2D viewport and
// animates transitions between states over a host-driven frame loop.
package camera

import (
	"log"
	"math"

	"github.com/automoto/camera2d/frame"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Camera is an observable, animatable viewport state holder. It runs on the
// single-threaded cooperative model of its frame scheduler and is not safe
// for concurrent use: every call must come from the host's update goroutine.
type Camera struct {
	world donburi.World // event bus substrate, private to this camera
	state State
	anim  *animation
	sched frame.Scheduler
	clock frame.Clock
}

// New creates a camera at the default state (0, 0, 0, 1) with no animation
// in flight. The scheduler drives animation frames and must not be nil; a
// nil clock falls back to the system clock. Both are injected so the
// animation engine can run against a manually pumped loop and a fake clock
// in tests.
func New(sched frame.Scheduler, clock frame.Clock) *Camera {
	if clock == nil {
		clock = frame.SystemClock{}
	}
	return &Camera{
		world: donburi.NewWorld(),
		state: DefaultState(),
		sched: sched,
		clock: clock,
	}
}

// GetState returns a snapshot of the current state.
func (c *Camera) GetState() State {
	return c.state
}

// IsAnimated reports whether a transition is currently in flight.
func (c *Camera) IsAnimated() bool {
	return c.anim != nil
}

// SetState overwrites the fields present in p, leaving absent fields
// untouched, then publishes an Updated event to all subscribers before
// returning. Non-finite values are dropped with a warning instead of
// poisoning the state. Returns the camera for chaining. A pending animation
// is not affected.
func (c *Camera) SetState(p Partial) *Camera {
	applyField("x", &c.state.X, p.X)
	applyField("y", &c.state.Y, p.Y)
	applyField("angle", &c.state.Angle, p.Angle)
	applyField("ratio", &c.state.Ratio, p.Ratio)
	Updated.Publish(c.world, c.state)
	Updated.ProcessEvents(c.world)
	return c
}

func applyField(name string, dst *float64, v *float64) {
	if v == nil {
		return
	}
	if !finite(*v) {
		log.Printf("Warning: camera: dropping non-finite %s value %v", name, *v)
		return
	}
	*dst = *v
}

// Animate drives the state from its current value toward target, one
// SetState per scheduled frame, over the configured duration. Starting a new
// animation cancels any in-flight one before its next frame runs, from any
// code path, including an Updated subscriber reacting to an interpolation
// frame. Cancellation never rolls back state already applied.
//
// On natural completion the exact target values are applied, not the
// interpolated tail, so the final state matches the request regardless of
// frame timing jitter. onDone, if not nil, runs once after that final
// SetState; a superseded animation's onDone never runs.
func (c *Camera) Animate(target Partial, opts *Options, onDone func()) {
	c.cancel()
	m := opts.merged()
	a := &animation{
		initial: c.GetState(),
		target:  target,
		tween:   gween.New(0, 1, float32(m.Duration.Seconds()), m.Easing),
		last:    c.clock.Now(),
		onDone:  onDone,
	}
	c.anim = a
	a.token = c.sched.Schedule(func() { c.step(a) })
}

// step advances one animation by one frame. The record is threaded through
// the closure rather than read from the camera so a stale frame that slipped
// past cancellation is a no-op.
func (c *Camera) step(a *animation) {
	if c.anim != a {
		return
	}
	now := c.clock.Now()
	dt := float32(now.Sub(a.last).Seconds())
	a.last = now
	k, done := a.tween.Update(dt)
	if done {
		c.anim = nil
		c.SetState(a.target)
		if a.onDone != nil {
			a.onDone()
		}
		return
	}
	c.SetState(a.at(float64(k)))
	if c.anim != a {
		// A subscriber superseded this animation mid-notification.
		return
	}
	a.token = c.sched.Schedule(func() { c.step(a) })
}

// cancel unschedules the in-flight animation, if any.
func (c *Camera) cancel() {
	if c.anim == nil {
		return
	}
	c.sched.Cancel(c.anim.token)
	c.anim = nil
}

// Pan animates the viewport by (dx, dy): the camera position moves the
// opposite way so the visible content shifts in the requested direction.
func (c *Camera) Pan(dx, dy float64, opts *Options, onDone func()) {
	c.Animate(Partial{
		X: Float64(c.state.X - dx),
		Y: Float64(c.state.Y - dy),
	}, opts, onDone)
}

// Zoom animates the zoom scale by factor: factor > 1 zooms in (ratio
// shrinks), factor < 1 zooms out. A zero or NaN factor falls back to
// DefaultZoomFactor.
func (c *Camera) Zoom(factor float64, opts *Options, onDone func()) {
	if factor == 0 || math.IsNaN(factor) {
		factor = DefaultZoomFactor
	}
	c.Animate(Partial{Ratio: Float64(c.state.Ratio / factor)}, opts, onDone)
}

// Dispose cancels any pending animation. Subscriptions are released with the
// camera's private event world when the camera itself is collected.
func (c *Camera) Dispose() {
	c.cancel()
}
