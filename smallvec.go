package smallvec

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/npillmayer/smallvec/alloc"
)

// Vector is a hybrid-storage sequence of elements of type T.
//
// The second type parameter A is the inline backing array, e.g. [8]T; its
// length is the static capacity. Up to that many elements live in the
// vector's own storage and no allocation is performed. Beyond it, elements
// spill to a buffer obtained from the vector's allocator. Shrinking below
// the static capacity does not revert to inline storage; only ShrinkToFit
// does.
//
// A vector created by
//
//	Vector[T, A]{}
//
// is a valid, empty container using the default heap allocator. Once used,
// a vector must not be copied by value (it references its own inline
// buffer); copies are detected and reported by panic.
type Vector[T, A any] struct {
	alc    alloc.Allocator[T]
	data   []T    // full-capacity view; aliases inline or a heap buffer
	count  uint32 // live elements at data[0:count]
	scap   uint32 // static capacity, len(A)
	noscan bool   // element type is free of pointers
	addr   *Vector[T, A]
	inline A
}

// init validates the instantiation, installs defaults on first use and
// guards against vectors copied by value.
func (v *Vector[T, A]) init() {
	if v.addr == v {
		return
	}
	if v.addr != nil {
		panic("smallvec: illegal use of Vector copied by value")
	}
	v.addr = v
	v.scap = uint32(staticCapFor[T, A]())
	v.noscan = !typeHasPointers(reflect.TypeFor[T]())
	if v.alc == nil {
		v.alc = alloc.Heap[T]{}
	}
	v.data = v.inlineSlice()
}

// staticCapFor checks that A is a non-empty array of T and returns its length.
func staticCapFor[T, A any]() int {
	at := reflect.TypeFor[A]()
	et := reflect.TypeFor[T]()
	assert(at.Kind() == reflect.Array && at.Elem() == et,
		"smallvec: inline storage parameter must be an array of the element type")
	assert(at.Len() >= 1, "smallvec: inline storage must hold at least one element")
	return at.Len()
}

// typeHasPointers reports whether values of t keep references alive. Types
// without pointers skip all slot-clearing work (the trivial-destroy path).
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return false
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// --- Construction ----------------------------------------------------------

// New creates an empty vector using the default heap allocator.
func New[T, A any]() *Vector[T, A] {
	v := &Vector[T, A]{}
	v.init()
	return v
}

// NewIn creates an empty vector that draws spill buffers from alc.
// A nil allocator falls back to the default heap allocator.
func NewIn[T, A any](alc alloc.Allocator[T]) *Vector[T, A] {
	v := &Vector[T, A]{alc: alc}
	v.init()
	return v
}

// NewLen creates a vector of n zero-valued elements.
func NewLen[T, A any](n int) (*Vector[T, A], error) {
	v := New[T, A]()
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Filled creates a vector of n copies of value.
func Filled[T, A any](n int, value T) (*Vector[T, A], error) {
	return FilledIn[T, A](n, value, nil)
}

// FilledIn creates a vector of n copies of value, spilling into alc.
func FilledIn[T, A any](n int, value T, alc alloc.Allocator[T]) (*Vector[T, A], error) {
	v := NewIn[T, A](alc)
	if err := v.AssignFill(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector holding a copy of the given elements.
func FromSlice[T, A any](values []T) (*Vector[T, A], error) {
	return FromSliceIn[T, A](values, nil)
}

// FromSliceIn creates a vector holding a copy of the given elements,
// spilling into alc.
func FromSliceIn[T, A any](values []T, alc alloc.Allocator[T]) (*Vector[T, A], error) {
	v := NewIn[T, A](alc)
	if err := v.AssignSlice(values); err != nil {
		return nil, err
	}
	return v, nil
}

// Of creates a vector from listed values.
func Of[T, A any](values ...T) (*Vector[T, A], error) {
	return FromSlice[T, A](values)
}

// FromSeq creates a vector from a sequence of unknown length. Elements are
// appended one by one, so the vector may reallocate repeatedly; prefer
// FromSlice when the element count is known up front.
func FromSeq[T, A any](seq iter.Seq[T]) (*Vector[T, A], error) {
	v := New[T, A]()
	if err := v.AssignSeq(seq); err != nil {
		return nil, err
	}
	return v, nil
}

// --- Observers ---------------------------------------------------------------

// Len returns the number of live elements.
func (v *Vector[T, A]) Len() int { return int(v.count) }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T, A]) IsEmpty() bool { return v.count == 0 }

// Cap returns the number of element slots available without reallocation:
// the static capacity while inline, the spill buffer's capacity otherwise.
func (v *Vector[T, A]) Cap() int {
	v.init()
	return len(v.data)
}

// StaticCap returns the inline slot count fixed by the type parameter A.
func (v *Vector[T, A]) StaticCap() int {
	v.init()
	return int(v.scap)
}

// MaxLen returns the largest representable element count. The internal
// counter is 32 bits wide, so the limit is 2³²−1 divided by the element
// size, independent of the platform's address width.
func (v *Vector[T, A]) MaxLen() int {
	return maxLenFor[T]()
}

// Spilled reports whether the elements currently live in an allocated
// buffer rather than the inline storage.
func (v *Vector[T, A]) Spilled() bool {
	v.init()
	return v.isHeap()
}

// Allocator returns the allocator the vector draws spill buffers from.
func (v *Vector[T, A]) Allocator() alloc.Allocator[T] {
	v.init()
	return v.alc
}

// Get returns the element at position i. The index is not validated beyond
// the live range check built into slice indexing; out-of-range access panics.
// Use At for a checked accessor.
func (v *Vector[T, A]) Get(i int) T {
	v.init()
	return v.data[:v.count][i]
}

// Ref returns the address of the element at position i, for in-place
// mutation. The reference is invalidated by any reallocating operation.
// Out-of-range access panics.
func (v *Vector[T, A]) Ref(i int) *T {
	v.init()
	return &v.data[:v.count][i]
}

// At returns the element at position i, or ErrIndexOutOfBounds if i is not
// less than Len.
func (v *Vector[T, A]) At(i int) (T, error) {
	v.init()
	if i < 0 || i >= int(v.count) {
		var zero T
		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfBounds, i, v.count)
	}
	return v.data[i], nil
}

// Front returns the first element. Panics if the vector is empty.
func (v *Vector[T, A]) Front() T { return v.Get(0) }

// Back returns the last element. Panics if the vector is empty.
func (v *Vector[T, A]) Back() T {
	v.init()
	return v.data[:v.count][v.count-1]
}

// Slice returns a view of the live elements. The view shares storage with
// the vector and is invalidated by any reallocating operation; its capacity
// is clipped so that appending to it cannot touch vector-owned slots.
func (v *Vector[T, A]) Slice() []T {
	v.init()
	n := int(v.count)
	return v.data[0:n:n]
}

// All returns an index/value iterator over the live elements.
func (v *Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.init()
		for i := 0; i < int(v.count); i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements.
func (v *Vector[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.init()
		for i := 0; i < int(v.count); i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an index/value iterator walking from the last element to
// the first.
func (v *Vector[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.init()
		for i := int(v.count) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// String renders the live elements, mainly for debugging and test output.
func (v *Vector[T, A]) String() string {
	v.init()
	return fmt.Sprintf("%v", v.data[:v.count])
}

// --- Inline storage plumbing -------------------------------------------------

// inlineSlice views the embedded backing array as an element slice.
func (v *Vector[T, A]) inlineSlice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), int(v.scap))
}

// isHeap reports heap mode: the data view does not alias the inline buffer.
func (v *Vector[T, A]) isHeap() bool {
	return unsafe.SliceData(v.data) != (*T)(unsafe.Pointer(&v.inline))
}
