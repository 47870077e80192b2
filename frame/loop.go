package frame

// Loop is a cooperative frame scheduler pumped by the host: call Tick once
// per frame (for ebiten, from Game.Update). Callbacks run in the order they
// were scheduled. A callback scheduled while a tick is running waits for the
// next tick, so re-scheduling work from inside a callback advances exactly
// one frame at a time.
//
// Loop is not safe for concurrent use. All calls must come from the host's
// update goroutine.
type Loop struct {
	last    Token
	pending []scheduled
}

type scheduled struct {
	token Token
	fn    func()
}

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) Schedule(fn func()) Token {
	l.last++
	l.pending = append(l.pending, scheduled{token: l.last, fn: fn})
	return l.last
}

func (l *Loop) Cancel(token Token) {
	for i, s := range l.pending {
		if s.token == token {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
}

// Tick runs every callback scheduled before this call.
func (l *Loop) Tick() {
	due := l.pending
	l.pending = nil
	for _, s := range due {
		s.fn()
	}
}

// Pending returns the number of callbacks waiting for the next tick.
func (l *Loop) Pending() int {
	return len(l.pending)
}
