package sceneedit

import "testing"

func TestFrameLoopRunsEachFrame(t *testing.T) {
	sched := NewManualScheduler()
	var times []float64
	loop := NewFrameLoop(sched, func(now float64) { times = append(times, now) })

	loop.Start()
	loop.Start() // no-op
	if sched.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", sched.Pending())
	}
	for _, now := range []float64{16, 32, 48} {
		sched.Advance(now)
	}
	if len(times) != 3 || times[2] != 48 {
		t.Errorf("times = %v, want [16 32 48]", times)
	}
	if loop.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", loop.Frames())
	}
	if sched.Now() != 48 {
		t.Errorf("Now = %v, want 48", sched.Now())
	}
}

func TestFrameLoopStopCancelsPending(t *testing.T) {
	sched := NewManualScheduler()
	steps := 0
	loop := NewFrameLoop(sched, func(float64) { steps++ })
	loop.Start()
	sched.Advance(16)
	loop.Stop()

	if loop.Running() {
		t.Error("Running = true after Stop")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", sched.Pending())
	}
	if ran := sched.Advance(32); ran != 0 {
		t.Errorf("Advance ran %d callbacks after Stop", ran)
	}
	if steps != 1 {
		t.Errorf("steps = %d, want 1", steps)
	}
	loop.Stop() // no-op
}

func TestFrameLoopStopFromStep(t *testing.T) {
	sched := NewManualScheduler()
	var loop *FrameLoop
	steps := 0
	loop = NewFrameLoop(sched, func(float64) {
		steps++
		loop.Stop()
	})
	loop.Start()
	sched.Advance(16)
	sched.Advance(32)
	if steps != 1 {
		t.Errorf("steps = %d, want 1", steps)
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", sched.Pending())
	}
}

func TestFrameLoopRestart(t *testing.T) {
	sched := NewManualScheduler()
	steps := 0
	loop := NewFrameLoop(sched, func(float64) { steps++ })
	loop.Start()
	loop.Stop()
	loop.Start()
	sched.Advance(16)
	if steps != 1 || sched.Pending() != 1 {
		t.Errorf("steps = %d, pending = %d; want 1, 1", steps, sched.Pending())
	}
}

func TestFrameLoopNilScheduler(t *testing.T) {
	loop := NewFrameLoop(nil, func(float64) {})
	loop.Start()
	if loop.Running() {
		t.Error("loop without scheduler should not run")
	}
}

func TestManualSchedulerDefersNewRequests(t *testing.T) {
	sched := NewManualScheduler()
	var order []string
	sched.RequestFrame(func(float64) {
		order = append(order, "a")
		sched.RequestFrame(func(float64) { order = append(order, "later") })
	})
	sched.RequestFrame(func(float64) { order = append(order, "b") })

	if ran := sched.Advance(1); ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
	sched.Advance(2)
	if len(order) != 3 || order[2] != "later" {
		t.Errorf("order = %v, want [a b later]", order)
	}
}

func TestManualSchedulerCancelWithinBatch(t *testing.T) {
	sched := NewManualScheduler()
	ran := false
	var h FrameHandle
	sched.RequestFrame(func(float64) { sched.CancelFrame(h) })
	h = sched.RequestFrame(func(float64) { ran = true })

	if n := sched.Advance(1); n != 1 {
		t.Errorf("Advance ran %d, want 1", n)
	}
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestManualSchedulerCancelUnknown(t *testing.T) {
	sched := NewManualScheduler()
	sched.CancelFrame(99) // must not panic
	sched.RequestFrame(func(float64) {})
	sched.CancelFrame(99)
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", sched.Pending())
	}
}
