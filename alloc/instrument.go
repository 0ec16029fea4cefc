package alloc

import (
	"fmt"
	"unsafe"
)

// Stats is a snapshot of allocator traffic recorded by a Counting allocator.
type Stats struct {
	Allocations    int // number of Allocate calls that succeeded
	Deallocations  int // number of Deallocate calls for live buffers
	Outstanding    int // buffers allocated but not yet deallocated
	SlotsGranted   int // total element slots handed out
	SlotsReclaimed int // total element slots taken back
	ForeignFrees   int // Deallocate calls for buffers this allocator never granted
}

// Counting wraps an inner allocator and records allocation traffic. It is
// the instrumentation hook for observing a container's allocation behavior
// in tests and diagnostics.
//
// Counting allocators are stateful: each instance compares equal only to
// itself, and a container cloned from one keeps the same instance so the
// record stays complete. The propagation policy is chosen at construction.
//
// Counting is not safe for concurrent use, matching the single-threaded
// container it instruments.
type Counting[T any] struct {
	inner  Allocator[T]
	policy Policy
	stats  Stats
	live   map[*T]int // granted buffers by base address, value = granted slots
}

// NewCounting wraps inner with traffic recording under the given policy.
// A nil inner defaults to the Heap allocator.
func NewCounting[T any](inner Allocator[T], policy Policy) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Counting[T]{
		inner:  inner,
		policy: policy,
		live:   make(map[*T]int),
	}
}

// Allocate hands out a buffer from the inner allocator and records it.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	buf, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.stats.Allocations++
	c.stats.SlotsGranted += len(buf)
	c.live[unsafe.SliceData(buf)] = len(buf)
	return buf, nil
}

// Deallocate returns a buffer to the inner allocator. Buffers that were not
// granted by this allocator are counted as foreign frees and not forwarded.
func (c *Counting[T]) Deallocate(buf []T) {
	base := unsafe.SliceData(buf)
	n, ok := c.live[base]
	if !ok {
		c.stats.ForeignFrees++
		return
	}
	delete(c.live, base)
	c.stats.Deallocations++
	c.stats.SlotsReclaimed += n
	c.inner.Deallocate(buf)
}

// Policy returns the propagation policy chosen at construction.
func (c *Counting[T]) Policy() Policy { return c.policy }

// EqualTo reports instance identity: a Counting allocator equals only itself.
func (c *Counting[T]) EqualTo(other any) bool {
	o, ok := other.(*Counting[T])
	return ok && o == c
}

// SelectForClone keeps the same instance for clones, so the traffic record
// covers the clone's buffers too.
func (c *Counting[T]) SelectForClone() Allocator[T] { return c }

// Stats returns a snapshot of the recorded traffic.
func (c *Counting[T]) Stats() Stats {
	s := c.stats
	s.Outstanding = len(c.live)
	return s
}

// Reset clears all recorded traffic but keeps live-buffer tracking intact.
func (c *Counting[T]) Reset() {
	c.stats = Stats{}
}

// Limited wraps an inner allocator and fails every Allocate call after a
// fixed number of successes. It exists to exercise allocation-failure
// rollback paths in tests.
type Limited[T any] struct {
	inner     Allocator[T]
	remaining int
}

// NewLimited permits the first allowed allocations and fails the rest.
// A nil inner defaults to the Heap allocator.
func NewLimited[T any](inner Allocator[T], allowed int) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limited[T]{inner: inner, remaining: allowed}
}

// Allocate forwards to the inner allocator while the budget lasts.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if l.remaining <= 0 {
		return nil, fmt.Errorf("%w: allocation budget exhausted", ErrAllocFailed)
	}
	buf, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.remaining--
	return buf, nil
}

// Deallocate forwards to the inner allocator; freeing is never limited.
func (l *Limited[T]) Deallocate(buf []T) { l.inner.Deallocate(buf) }

// Policy returns the inner allocator's policy.
func (l *Limited[T]) Policy() Policy { return l.inner.Policy() }
