package smallvec

import (
	"fmt"
	"iter"
)

// Push appends value, growing the capacity exponentially when exhausted.
// Fails with ErrCapacityExceeded when the vector is already at MaxLen, or
// with the allocator's error when a spill buffer cannot be obtained; in both
// cases the vector is unchanged.
//
// The argument is copied before any relocation takes place, so pushing an
// element of the same vector (v.Push(v.Get(0))) is well-defined even when
// the call grows the buffer.
func (v *Vector[T, A]) Push(value T) error {
	v.init()
	if int(v.count) == len(v.data) {
		need := int(v.count) + 1
		if need > maxLenFor[T]() {
			return fmt.Errorf("%w: length %d is the maximum for this element type",
				ErrCapacityExceeded, v.count)
		}
		if err := v.reallocate(growth[T](int(v.count), need)); err != nil {
			return err
		}
	}
	v.data[v.count] = value
	v.count++
	return nil
}

// Pop removes and returns the last element. Panics if the vector is empty.
func (v *Vector[T, A]) Pop() T {
	v.init()
	n := int(v.count) - 1
	value := v.data[:v.count][n]
	v.destroy(v.data[n : n+1])
	v.count = uint32(n)
	return value
}

// insertImpl opens room for n elements at position i and lets construct
// write them. If the new total fits the current capacity, the suffix is
// shifted up (overlap-safe) and construct fills the gap in place. Otherwise
// a single fresh buffer sized by grow receives the new elements at their
// final position, with the old prefix and suffix relocated around them, so
// no element moves twice.
func (v *Vector[T, A]) insertImpl(i, n int, construct func(dest []T), grow func(count, need int) int) error {
	if i < 0 || i > int(v.count) {
		return fmt.Errorf("%w: insert position %d with length %d", ErrIndexOutOfBounds, i, v.count)
	}
	if n == 0 {
		return nil
	}
	need := int(v.count) + n
	if need > maxLenFor[T]() {
		return fmt.Errorf("%w: %d elements exceed the limit of %d", ErrCapacityExceeded, need, maxLenFor[T]())
	}
	if need <= len(v.data) {
		copy(v.data[i+n:need], v.data[i:v.count])
		construct(v.data[i : i+n])
		v.count = uint32(need)
		return nil
	}
	return v.allocAssign(grow(int(v.count), need), func(dest []T) int {
		construct(dest[i : i+n])
		copy(dest[:i], v.data[:i])
		copy(dest[i+n:need], v.data[i:v.count])
		v.destroy(v.data[:v.count])
		return need
	})
}

// Insert places value at position i, shifting the suffix up. Growth is
// exponential, like Push.
func (v *Vector[T, A]) Insert(i int, value T) error {
	v.init()
	return v.insertImpl(i, 1, func(dest []T) {
		dest[0] = value
	}, growth[T])
}

// InsertSlice places a copy of values at position i. A reallocation grows to
// exactly the minimum needed, not exponentially: batch inserts of known size
// favor space economy over amortization.
//
// values must not alias the vector's own storage.
func (v *Vector[T, A]) InsertSlice(i int, values []T) error {
	v.init()
	return v.insertImpl(i, len(values), func(dest []T) {
		copy(dest, values)
	}, exactGrowth[T])
}

// Append appends all values; equivalent to InsertSlice at the end.
func (v *Vector[T, A]) Append(values ...T) error {
	v.init()
	return v.insertImpl(int(v.count), len(values), func(dest []T) {
		copy(dest, values)
	}, exactGrowth[T])
}

// Delete removes the elements in [i, j), closing the gap by relocating the
// suffix down. An empty range is a no-op. Capacity and storage mode are
// unchanged.
func (v *Vector[T, A]) Delete(i, j int) error {
	v.init()
	if i < 0 || j < i || j > int(v.count) {
		return fmt.Errorf("%w: erase range [%d,%d) with length %d", ErrIndexOutOfBounds, i, j, v.count)
	}
	if i == j {
		return nil
	}
	n := int(v.count)
	copy(v.data[i:], v.data[j:n])
	v.destroy(v.data[n-(j-i) : n])
	v.count = uint32(n - (j - i))
	return nil
}

// Remove removes the single element at position i.
func (v *Vector[T, A]) Remove(i int) error {
	return v.Delete(i, i+1)
}

// Clear removes all elements. Capacity and storage mode are unchanged; a
// spill buffer is kept, not released.
func (v *Vector[T, A]) Clear() {
	v.init()
	v.destroy(v.data[:v.count])
	v.count = 0
}

// Reserve ensures capacity for at least n elements, reallocating to exactly
// n when the current capacity is smaller. Reserve never shrinks.
func (v *Vector[T, A]) Reserve(n int) error {
	v.init()
	if n <= len(v.data) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reduces capacity to the minimum for the current length. When
// the elements fit the inline buffer they are relocated back into it and the
// spill buffer is released (the only heap-to-inline transition). Otherwise
// the buffer is reallocated to exactly the live count. Shrinking is eager:
// any excess triggers a relocation.
func (v *Vector[T, A]) ShrinkToFit() error {
	v.init()
	if !v.isHeap() {
		return nil
	}
	n := int(v.count)
	if n <= int(v.scap) {
		old := v.data
		inl := v.inlineSlice()
		copy(inl, old[:n])
		v.data = inl
		v.dealloc(old)
		tracer().Debugf("smallvec: shrank %d element(s) back into inline storage", n)
		return nil
	}
	if n != len(v.data) {
		return v.reallocate(n)
	}
	return nil
}

// Resize sets the length to n, dropping the excess suffix or appending
// zero-valued elements. Growing reserves exactly n slots.
func (v *Vector[T, A]) Resize(n int) error {
	var zero T
	return v.resize(n, zero)
}

// ResizeFill sets the length to n, dropping the excess suffix or appending
// copies of value. Growing reserves exactly n slots.
func (v *Vector[T, A]) ResizeFill(n int, value T) error {
	return v.resize(n, value)
}

func (v *Vector[T, A]) resize(n int, value T) error {
	v.init()
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrIllegalArguments, n)
	}
	cur := int(v.count)
	switch {
	case n > cur:
		if err := v.Reserve(n); err != nil {
			return err
		}
		fillData(v.data[cur:n], value)
	case n < cur:
		v.destroy(v.data[n:cur])
	}
	v.count = uint32(n)
	return nil
}

// AssignSlice replaces all contents with a copy of values. The current
// buffer is reused when it has room, otherwise the vector reallocates to the
// exact size needed.
func (v *Vector[T, A]) AssignSlice(values []T) error {
	v.init()
	return v.assignInternal(len(values), func(dest []T) int {
		return copy(dest, values)
	})
}

// AssignFill replaces all contents with n copies of value.
func (v *Vector[T, A]) AssignFill(n int, value T) error {
	v.init()
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrIllegalArguments, n)
	}
	return v.assignInternal(n, func(dest []T) int {
		fillData(dest[:n], value)
		return n
	})
}

// Assign replaces all contents with the listed values.
func (v *Vector[T, A]) Assign(values ...T) error {
	return v.AssignSlice(values)
}

// AssignSeq replaces all contents with the elements of a sequence of unknown
// length: the vector is cleared and elements are appended one by one. If an
// append fails, the elements consumed so far are kept.
func (v *Vector[T, A]) AssignSeq(seq iter.Seq[T]) error {
	v.init()
	v.Clear()
	for value := range seq {
		if err := v.Push(value); err != nil {
			return err
		}
	}
	return nil
}
