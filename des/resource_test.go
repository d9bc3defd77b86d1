package des

import "testing"

// TestResource_FIFO_SerializesHoldersAtCapacityOne exercises a
// capacity-1 Resource with three acquires issued back to back at t=0,
// each holder releasing 10 units after being granted. Expected grant
// times: 0, 10, 20; val stays at 1 once the third holder is granted (it
// never releases in this test).
func TestResource_FIFO_SerializesHoldersAtCapacityOne(t *testing.T) {
	sim := New()
	r := NewResource(sim, 1)

	var grants []float32
	startRelease := func() {
		sim.Event(f32(10)).Callback(func(sim *Simulation) { r.Release() })
	}

	for i := 0; i < 3; i++ {
		r.Acquire().Callback(func(sim *Simulation) {
			grants = append(grants, sim.Now())
			if len(grants) < 3 {
				startRelease()
			}
		})
	}

	sim.Run(nil)

	want := []float32{0, 10, 20}
	if len(grants) != len(want) {
		t.Fatalf("grants = %v, want %v", grants, want)
	}
	for i := range want {
		if grants[i] != want[i] {
			t.Fatalf("grants = %v, want %v", grants, want)
		}
	}
	if r.Val() != 1 {
		t.Errorf("Val() = %d, want 1 (third holder never released)", r.Val())
	}
}

// TestResource_NeverExceedsCapacity checks that many acquires issued
// before the simulation runs any events never push val above max.
func TestResource_NeverExceedsCapacity(t *testing.T) {
	sim := New()
	r := NewResource(sim, 2)

	for i := 0; i < 5; i++ {
		r.Acquire()
		if r.Val() > r.Max() {
			t.Fatalf("Val() = %d exceeds Max() = %d", r.Val(), r.Max())
		}
	}
}

func TestResource_Release_WithNoHolder_Panics(t *testing.T) {
	sim := New()
	r := NewResource(sim, 1)

	defer func() {
		if recover() == nil {
			t.Error("expected panic releasing an unheld resource")
		}
	}()
	r.Release()
}

func TestResource_Acquire_WhenFree_GrantsAtZeroDelay(t *testing.T) {
	sim := New()
	r := NewResource(sim, 1)

	granted := false
	r.Acquire().Callback(func(sim *Simulation) { granted = true })

	sim.Run(nil)
	if !granted {
		t.Fatal("expected immediate grant")
	}
	if sim.Now() != 0 {
		t.Errorf("Now() = %v, want 0", sim.Now())
	}
}

func TestNewResource_ZeroCapacity_Panics(t *testing.T) {
	sim := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing a zero-capacity Resource")
		}
	}()
	NewResource(sim, 0)
}
