package smallvec

import (
	"fmt"
	"math"
	"unsafe"
)

// maxLenFor bounds element counts by the 32-bit internal counter: the limit
// is 2³²−1 divided by the element size, clamped to the int range. Zero-sized
// element types are bounded by the counter alone.
func maxLenFor[T any]() int {
	var zero T
	limit := uint64(math.MaxUint32)
	if s := uint64(unsafe.Sizeof(zero)); s > 0 {
		limit /= s
	}
	if limit > uint64(math.MaxInt) {
		limit = uint64(math.MaxInt)
	}
	return int(limit)
}

// allocate obtains a buffer of at least n slots from the allocator, after
// checking the representable maximum. The returned buffer may be larger than
// requested when the allocator over-allocates; the full length is usable
// capacity. Failures leave the vector untouched.
func (v *Vector[T, A]) allocate(n int) ([]T, error) {
	m := maxLenFor[T]()
	if n > m {
		return nil, fmt.Errorf("%w: %d slots requested, limit is %d", ErrCapacityExceeded, n, m)
	}
	buf, err := v.alc.Allocate(n)
	if err != nil {
		return nil, err
	}
	assert(len(buf) >= n, "smallvec: allocator granted less than requested")
	if len(buf) > m {
		// Over-allocated past the counter range; the excess is unusable.
		buf = buf[:m]
	}
	return buf, nil
}

// dealloc releases a buffer. Releasing the inline buffer is a no-op.
func (v *Vector[T, A]) dealloc(buf []T) {
	if unsafe.SliceData(buf) == (*T)(unsafe.Pointer(&v.inline)) {
		return
	}
	v.alc.Deallocate(buf)
}

// destroy clears slots whose elements are dead, so the collector can reclaim
// what they referenced. Skipped entirely for pointer-free element types.
func (v *Vector[T, A]) destroy(slots []T) {
	if v.noscan {
		return
	}
	clear(slots)
}

// fillData writes value into every slot of dest.
func fillData[T any](dest []T, value T) {
	for i := range dest {
		dest[i] = value
	}
}

// growth returns the capacity for an incremental append that must hold at
// least need slots: exponential in the current count, capped at the maximum.
func growth[T any](count, need int) int {
	g := count + count/2 + 1
	if g < need {
		g = need
	}
	if m := maxLenFor[T](); g > m {
		g = m
	}
	return g
}

// exactGrowth sizes the buffer to exactly the minimum needed. Used by
// Reserve, ShrinkToFit and batch range inserts, trading possible repeated
// reallocation for space economy.
func exactGrowth[T any](count, need int) int {
	return need
}

// allocAssign installs a freshly allocated buffer of at least reqCap slots.
// fill writes the new contents into the buffer and returns the new count;
// it runs while the old data is still intact, so it may read from it. On
// allocation failure the vector is left completely unmodified. The old
// buffer is released after the switch.
func (v *Vector[T, A]) allocAssign(reqCap int, fill func(dest []T) int) error {
	buf, err := v.allocate(reqCap)
	if err != nil {
		return err
	}
	n := fill(buf)
	old := v.data
	v.data = buf
	v.count = uint32(n)
	v.dealloc(old)
	tracer().Debugf("smallvec: relocated %d element(s) into a buffer of %d slots", n, len(buf))
	return nil
}

// assignInternal replaces all contents with whatever fill writes, reusing
// the current buffer if n fits its capacity and reallocating otherwise.
// In the reuse case fill may read the old elements (memmove semantics); the
// tail beyond the new count is cleared afterwards.
func (v *Vector[T, A]) assignInternal(n int, fill func(dest []T) int) error {
	if n > len(v.data) {
		return v.allocAssign(n, fill)
	}
	m := fill(v.data)
	if m < int(v.count) {
		v.destroy(v.data[m:v.count])
	}
	v.count = uint32(m)
	return nil
}

// reallocate moves the live elements into a fresh buffer of at least reqCap
// slots. The vacated slots are cleared for pointer-bearing element types.
func (v *Vector[T, A]) reallocate(reqCap int) error {
	return v.allocAssign(reqCap, func(dest []T) int {
		n := int(v.count)
		copy(dest, v.data[:n])
		v.destroy(v.data[:n])
		return n
	})
}
