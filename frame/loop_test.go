package frame

import "testing"

func TestLoopRunsCallbacksInScheduleOrder(t *testing.T) {
	l := NewLoop()

	var order []int
	l.Schedule(func() { order = append(order, 1) })
	l.Schedule(func() { order = append(order, 2) })
	l.Schedule(func() { order = append(order, 3) })

	l.Tick()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected callbacks to run in schedule order 1,2,3, got %v", order)
	}
}

func TestLoopCancelPreventsRun(t *testing.T) {
	l := NewLoop()

	ran := false
	tok := l.Schedule(func() { ran = true })
	l.Cancel(tok)
	l.Tick()

	if ran {
		t.Error("Expected a cancelled callback to never run")
	}
}

func TestLoopCancelKeepsOtherCallbacks(t *testing.T) {
	l := NewLoop()

	var order []int
	l.Schedule(func() { order = append(order, 1) })
	tok := l.Schedule(func() { order = append(order, 2) })
	l.Schedule(func() { order = append(order, 3) })

	l.Cancel(tok)
	l.Tick()

	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("Expected remaining callbacks 1,3 in order, got %v", order)
	}
}

func TestLoopCancelAfterRunIsNoOp(t *testing.T) {
	l := NewLoop()

	tok := l.Schedule(func() {})
	l.Tick()
	l.Cancel(tok) // must not panic or affect later scheduling

	ran := false
	l.Schedule(func() { ran = true })
	l.Tick()

	if !ran {
		t.Error("Expected scheduling to keep working after a stale Cancel")
	}
}

func TestLoopDefersCallbacksScheduledDuringTick(t *testing.T) {
	l := NewLoop()

	var runs int
	l.Schedule(func() {
		runs++
		l.Schedule(func() { runs++ })
	})

	l.Tick()
	if runs != 1 {
		t.Fatalf("Expected a callback scheduled mid-tick to wait for the next tick, got %d runs", runs)
	}
	if got := l.Pending(); got != 1 {
		t.Fatalf("Expected 1 pending callback after the first tick, got %d", got)
	}

	l.Tick()
	if runs != 2 {
		t.Errorf("Expected the deferred callback to run on the second tick, got %d runs", runs)
	}
}

func TestLoopPending(t *testing.T) {
	l := NewLoop()

	if got := l.Pending(); got != 0 {
		t.Errorf("Expected an empty loop to report 0 pending, got %d", got)
	}

	tok := l.Schedule(func() {})
	l.Schedule(func() {})
	if got := l.Pending(); got != 2 {
		t.Errorf("Expected 2 pending after scheduling, got %d", got)
	}

	l.Cancel(tok)
	if got := l.Pending(); got != 1 {
		t.Errorf("Expected 1 pending after cancelling one, got %d", got)
	}

	l.Tick()
	if got := l.Pending(); got != 0 {
		t.Errorf("Expected 0 pending after a tick, got %d", got)
	}
}
