package sceneedit

import "testing"

func TestEmitterOrder(t *testing.T) {
	var e Emitter[int]
	var got []int
	e.Subscribe(func(v int) { got = append(got, v*10) })
	e.Subscribe(func(v int) { got = append(got, v*10+1) })
	e.Emit(3)
	if len(got) != 2 || got[0] != 30 || got[1] != 31 {
		t.Errorf("got %v, want [30 31]", got)
	}
}

func TestEmitterEmitEmpty(t *testing.T) {
	var e Emitter[string]
	e.Emit("nobody listening") // must not panic
	if e.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Len())
	}
}

func TestSubscriptionRemove(t *testing.T) {
	var e Emitter[int]
	calls := 0
	a := e.Subscribe(func(int) { calls++ })
	b := e.Subscribe(func(int) { calls += 10 })

	if !a.Active() || !b.Active() {
		t.Fatal("new subscriptions should be active")
	}
	a.Remove()
	a.Remove()
	if a.Active() {
		t.Error("removed subscription still active")
	}
	e.Emit(0)
	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
	if e.Len() != 1 {
		t.Errorf("Len = %d, want 1", e.Len())
	}
}

func TestSubscriptionZeroValue(t *testing.T) {
	var s Subscription
	s.Remove()
	if s.Active() {
		t.Error("zero Subscription should be inactive")
	}
}

func TestEmitterRemoveDuringEmit(t *testing.T) {
	var e Emitter[int]
	var order []string
	var second Subscription
	e.Subscribe(func(int) {
		order = append(order, "first")
		second.Remove()
	})
	second = e.Subscribe(func(int) { order = append(order, "second") })

	e.Emit(0)
	e.Emit(0)
	want := []string{"first", "second", "first"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEmitterOwns(t *testing.T) {
	var a, b Emitter[int]
	var c Emitter[string]
	sub := a.Subscribe(func(int) {})
	if !a.owns(sub) {
		t.Error("a should own its subscription")
	}
	if b.owns(sub) {
		t.Error("b should not own a's subscription")
	}
	if c.owns(sub) {
		t.Error("emitter of another type should not own the subscription")
	}
}

func TestSubscriptionSet(t *testing.T) {
	var e Emitter[int]
	var set subscriptionSet
	for range 3 {
		set.add(e.Subscribe(func(int) {}))
	}
	keep := e.Subscribe(func(int) {})
	set.removeAll()
	if e.Len() != 1 || !keep.Active() {
		t.Errorf("Len = %d, want only the unmanaged subscription left", e.Len())
	}
	if len(set) != 0 {
		t.Errorf("set len = %d, want 0", len(set))
	}
}
