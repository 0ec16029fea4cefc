package alloc

import (
	"errors"
	"testing"
)

func TestHeapAllocator(t *testing.T) {
	var h Heap[int]
	buf, err := h.Allocate(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 16 {
		t.Errorf("granted %d slots, want 16", len(buf))
	}
	for i, x := range buf {
		if x != 0 {
			t.Errorf("slot %d not zeroed: %d", i, x)
		}
	}
	h.Deallocate(buf)
	if _, err := h.Allocate(-1); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("negative request: err = %v", err)
	}
	if h.Policy() != (Policy{}) {
		t.Errorf("heap allocator must not propagate")
	}
}

func TestCountingStats(t *testing.T) {
	cnt := NewCounting[int](nil, Policy{})
	a, _ := cnt.Allocate(8)
	b, _ := cnt.Allocate(4)
	cnt.Deallocate(a)
	//
	s := cnt.Stats()
	if s.Allocations != 2 || s.Deallocations != 1 || s.Outstanding != 1 {
		t.Errorf("stats = %+v", s)
	}
	if s.SlotsGranted != 12 || s.SlotsReclaimed != 8 {
		t.Errorf("slot accounting = %+v", s)
	}
	cnt.Deallocate(b)
	if got := cnt.Stats().Outstanding; got != 0 {
		t.Errorf("%d buffer(s) still live", got)
	}
}

func TestCountingForeignFree(t *testing.T) {
	cnt := NewCounting[int](nil, Policy{})
	foreign := make([]int, 4)
	cnt.Deallocate(foreign)
	s := cnt.Stats()
	if s.ForeignFrees != 1 {
		t.Errorf("foreign free not recorded: %+v", s)
	}
	if s.Deallocations != 0 {
		t.Errorf("foreign free counted as regular deallocation")
	}
}

func TestCountingDoubleFree(t *testing.T) {
	cnt := NewCounting[int](nil, Policy{})
	buf, _ := cnt.Allocate(4)
	cnt.Deallocate(buf)
	cnt.Deallocate(buf)
	s := cnt.Stats()
	if s.Deallocations != 1 || s.ForeignFrees != 1 {
		t.Errorf("double free: %+v", s)
	}
}

func TestCountingIdentity(t *testing.T) {
	a := NewCounting[int](nil, Policy{})
	b := NewCounting[int](nil, Policy{})
	if !a.EqualTo(a) {
		t.Errorf("allocator must equal itself")
	}
	if a.EqualTo(b) {
		t.Errorf("distinct counting allocators must not compare equal")
	}
	if got := a.SelectForClone(); got != Allocator[int](a) {
		t.Errorf("clone selection must keep the instance")
	}
}

func TestCountingReset(t *testing.T) {
	cnt := NewCounting[int](nil, Policy{})
	buf, _ := cnt.Allocate(4)
	cnt.Reset()
	if s := cnt.Stats(); s.Allocations != 0 || s.Outstanding != 1 {
		t.Errorf("reset must clear counters but keep live tracking: %+v", s)
	}
	cnt.Deallocate(buf)
	if s := cnt.Stats(); s.ForeignFrees != 0 || s.Deallocations != 1 {
		t.Errorf("live buffer lost across reset: %+v", s)
	}
}

func TestLimitedBudget(t *testing.T) {
	lim := NewLimited[int](nil, 2)
	if _, err := lim.Allocate(4); err != nil {
		t.Fatal(err)
	}
	if _, err := lim.Allocate(4); err != nil {
		t.Fatal(err)
	}
	if _, err := lim.Allocate(4); !errors.Is(err, ErrAllocFailed) {
		t.Errorf("exhausted budget: err = %v", err)
	}
	// A failed attempt does not consume budget retroactively; freeing works.
	lim.Deallocate(make([]int, 4))
}

func TestEqualFallback(t *testing.T) {
	if !Equal[int](Heap[int]{}, Heap[int]{}) {
		t.Errorf("stateless allocators must compare equal")
	}
	cnt := NewCounting[int](nil, Policy{})
	if Equal[int](cnt, Heap[int]{}) {
		t.Errorf("counting allocator equals only itself")
	}
	if Equal[int](Heap[int]{}, cnt) {
		t.Errorf("equality must consult either side's capability")
	}
}
