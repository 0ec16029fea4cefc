package smallvec

import (
	"fmt"
	"io"
)

// Dump writes the internal storage layout of a vector to w (for debugging
// purposes): storage mode, counts, and one line per slot, marking live
// elements and spare capacity.
func (v *Vector[T, A]) Dump(w io.Writer) {
	v.init()
	mode := "inline"
	if v.isHeap() {
		mode = "spilled"
	}
	fmt.Fprintf(w, "smallvec [%s] len=%d cap=%d static=%d max=%d\n",
		mode, v.count, len(v.data), v.scap, v.MaxLen())
	for i := 0; i < len(v.data); i++ {
		if i < int(v.count) {
			fmt.Fprintf(w, "  %4d | %v\n", i, v.data[i])
		} else {
			fmt.Fprintf(w, "  %4d | --\n", i)
		}
	}
}
