/*
Package alloc provides the pluggable memory-source abstraction used by
package smallvec.

An Allocator hands out backing buffers for container storage and takes them
back when the container reallocates or is dropped. Allocators carry a Policy
of propagation traits which cross-container operations (copy-assign,
move-assign, swap) consult to decide whether the allocator instance itself
travels with the elements.

Package alloc also ships instrumented allocators: Counting records
allocation traffic for tests and diagnostics, Limited fails deterministically
once a budget is exhausted.
*/
package alloc

// Policy carries the three propagation traits of an allocator. A trait that
// is set makes the allocator instance itself travel during the respective
// cross-container operation; an unset trait transfers elements only.
type Policy struct {
	PropagateOnCopy bool
	PropagateOnMove bool
	PropagateOnSwap bool
}

// Allocator hands out and reclaims backing buffers of element slots.
//
// Allocate returns a buffer of at least n slots. The length of the returned
// slice is the granted capacity, which may exceed n if the allocator rounds
// requests up; callers must treat the full length as usable. Allocation
// failure is reported as an error wrapping ErrAllocFailed.
//
// Deallocate must only be called with a buffer previously returned by
// Allocate on the same allocator, and at most once per buffer.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Policy() Policy
}

// Equaler is an optional capability of stateful allocators. Two allocators
// that compare equal may free each other's buffers.
type Equaler interface {
	EqualTo(other any) bool
}

// CloneSelector is an optional capability consulted when a container is
// cloned: it picks the allocator instance for the clone. Without it the
// clone shares the source's allocator.
type CloneSelector[T any] interface {
	SelectForClone() Allocator[T]
}

// Equal reports whether two allocators compare equal. Allocators without the
// Equaler capability are assumed equal.
func Equal[T any](a, b Allocator[T]) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.EqualTo(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.EqualTo(a)
	}
	return true
}

// Heap is the default allocator, backed by the garbage-collected Go heap.
// It is stateless, never fails and does not propagate.
type Heap[T any] struct{}

// Allocate returns a zeroed buffer of exactly n slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidRequest
	}
	return make([]T, n), nil
}

// Deallocate drops the buffer; reclamation is left to the garbage collector.
func (Heap[T]) Deallocate(buf []T) {}

// Policy returns the zero policy: elements move, the allocator does not.
func (Heap[T]) Policy() Policy { return Policy{} }
