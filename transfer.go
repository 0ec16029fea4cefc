package smallvec

import (
	"github.com/npillmayer/smallvec/alloc"
)

// Clone returns an independent copy of the vector. The clone's allocator is
// chosen by the source allocator's clone-selection capability, defaulting to
// the same instance. Storage mode follows the element count: a clone of a
// spilled vector whose elements fit inline is created inline.
func (v *Vector[T, A]) Clone() (*Vector[T, A], error) {
	v.init()
	alc := v.alc
	if sel, ok := alc.(alloc.CloneSelector[T]); ok {
		alc = sel.SelectForClone()
	}
	c := NewIn[T, A](alc)
	n := int(v.count)
	err := c.assignInternal(n, func(dest []T) int {
		return copy(dest, v.data[:n])
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the vector's contents with a copy of other's. Assigning
// a vector to itself is a no-op. If the incoming allocator's propagate-on-
// copy trait is set and the two allocators differ, the vector releases its
// spill buffer and adopts other's allocator before copying; otherwise the
// existing allocator and, where capacity suffices, the existing buffer are
// reused.
func (v *Vector[T, A]) CopyFrom(other *Vector[T, A]) error {
	v.init()
	other.init()
	if v == other {
		return nil
	}
	if other.alc.Policy().PropagateOnCopy && other.isHeap() && !alloc.Equal(v.alc, other.alc) {
		v.Clear()
		old := v.data
		v.data = v.inlineSlice()
		v.dealloc(old)
		v.alc = other.alc
	}
	n := int(other.count)
	return v.assignInternal(n, func(dest []T) int {
		return copy(dest, other.data[:n])
	})
}

// MoveFrom transfers other's contents into the vector, leaving other empty
// in inline mode. A spilled donor hands its buffer over in O(1); an inline
// donor's elements are relocated one by one (the receiving inline buffer
// always has room, the two vectors sharing a static capacity). The vector's
// previous elements are disposed of first. MoveFrom never allocates.
//
// If the incoming allocator's propagate-on-move trait is set and the two
// allocators differ, the vector's spill buffer is released and other's
// allocator adopted before the transfer.
func (v *Vector[T, A]) MoveFrom(other *Vector[T, A]) {
	v.init()
	other.init()
	if v == other {
		return
	}
	if other.alc.Policy().PropagateOnMove && !alloc.Equal(v.alc, other.alc) {
		v.Clear()
		old := v.data
		v.data = v.inlineSlice()
		v.dealloc(old)
		v.alc = other.alc
	}
	v.moveInternal(other)
}

func (v *Vector[T, A]) moveInternal(other *Vector[T, A]) {
	v.Clear()
	if other.isHeap() {
		v.dealloc(v.data)
		v.data = other.data
		other.data = other.inlineSlice()
	} else {
		copy(v.data[:other.count], other.data[:other.count])
		other.destroy(other.data[:other.count])
	}
	v.count = other.count
	other.count = 0
}

// Swap exchanges contents, lengths and capacities with other. Two spilled
// vectors swap buffers in O(1); two inline vectors swap element-wise and
// relocate the length-difference tail; mixed modes relocate the inline
// side's elements into the spilled side's inline buffer and hand the spill
// buffer across. Allocators are exchanged only when both carry the
// propagate-on-swap trait.
func (v *Vector[T, A]) Swap(other *Vector[T, A]) {
	v.init()
	other.init()
	if v == other {
		return
	}
	switch {
	case v.isHeap() && other.isHeap():
		v.data, other.data = other.data, v.data
		v.count, other.count = other.count, v.count
	case v.isHeap():
		swapSpilledInline(v, other)
	case other.isHeap():
		swapSpilledInline(other, v)
	default:
		lo, hi := v, other
		if lo.count > hi.count {
			lo, hi = hi, lo
		}
		nlo, nhi := int(lo.count), int(hi.count)
		for i := 0; i < nlo; i++ {
			lo.data[i], hi.data[i] = hi.data[i], lo.data[i]
		}
		copy(lo.data[nlo:nhi], hi.data[nlo:nhi])
		hi.destroy(hi.data[nlo:nhi])
		lo.count, hi.count = uint32(nhi), uint32(nlo)
	}
	if v.alc.Policy().PropagateOnSwap && other.alc.Policy().PropagateOnSwap {
		v.alc, other.alc = other.alc, v.alc
	}
}

// swapSpilledInline hands h's spill buffer to i and relocates i's elements
// into h's now-unused inline buffer.
func swapSpilledInline[T, A any](h, i *Vector[T, A]) {
	hData, hCount := h.data, h.count
	inl := h.inlineSlice()
	copy(inl[:i.count], i.data[:i.count])
	i.destroy(i.data[:i.count])
	h.data = inl
	h.count = i.count
	i.data = hData
	i.count = hCount
}
