/*
Package smallvec implements a hybrid-storage sequence: a growable container
that keeps its first elements in a fixed-size buffer embedded in the
container's own storage and transparently spills to an allocator-provided
buffer once the element count exceeds the inline capacity.

A vector is instantiated with two type parameters, the element type and the
inline backing array:

	var v smallvec.Vector[int, [8]int]
	_ = v.Push(1)

The second parameter fixes the static capacity at compile time. As long as
no more than eight ints are held, the example above performs no heap
allocation at all; the ninth Push relocates the elements to an allocated
buffer. An explicit ShrinkToFit is the only way back to inline storage.

The zero value is an empty vector using the default heap allocator. Because
a vector references its own inline buffer, it must not be copied by value
after first use; create vectors with the constructors or keep them behind a
pointer. Misuse is detected and reported by panic.

Growth on incremental appends is exponential (count + count/2 + 1); Reserve,
ShrinkToFit and batch range inserts size the buffer exactly. Element counts
are bounded by a 32-bit internal counter: operations that would exceed
MaxLen fail with ErrCapacityExceeded rather than overflow.

Allocation behavior is observable and pluggable through package alloc,
including propagation traits for copy/move/swap and instrumented allocators
for tests.

Vectors carry no internal synchronization; concurrent use of one instance
requires external locking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package smallvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer aliases T for use inside methods of Vector, where the element type
// parameter T shadows the accessor.
var tracer = T
