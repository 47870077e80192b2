package frame

import "time"

// Token identifies one scheduled frame callback so it can be cancelled.
type Token uint64

// Scheduler registers work to run on the host's next frame tick. The camera
// animation engine only ever talks to this interface, so tests can drive it
// with a manually pumped Loop instead of a real rendering loop.
type Scheduler interface {
	// Schedule queues fn for the next tick and returns its cancellation token.
	Schedule(fn func()) Token

	// Cancel drops a queued callback before it runs. Cancelling a token whose
	// callback already ran, or was already cancelled, is a no-op.
	Cancel(token Token)
}

// Clock supplies the current time for animation progress. Injected alongside
// the Scheduler so transitions can be tested against a fake clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
