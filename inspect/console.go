/*
Package inspect renders the storage state of smallvec vectors for terminals
(for interactive debugging and demos).

The output shows the storage mode, an occupancy bar over the current
capacity, and the live elements. On an interactive terminal the element
listing wraps at the terminal width and storage modes are color-coded.
*/
package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/smallvec"
)

// Console formats vector storage state for a fixed-width terminal.
type Console struct {
	linewidth int
	inline    *color.Color
	spilled   *color.Color
	spare     *color.Color
}

// NewConsole creates a formatter. The line width is read from the current
// terminal if stdout is interactive, with a fallback of 65 columns.
func NewConsole() *Console {
	return &Console{
		linewidth: lineWidthFromTerminal(),
		inline:    color.New(color.FgGreen),
		spilled:   color.New(color.FgRed),
		spare:     color.New(color.FgHiBlack),
	}
}

// lineWidthFromTerminal checks whether stdout is a terminal, and if so reads
// the terminal's width.
func lineWidthFromTerminal() int {
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 10 {
			return w
		}
	}
	return 65
}

// Print renders the storage state of v to stdout.
func Print[T, A any](c *Console, v *smallvec.Vector[T, A]) {
	Fprint(c, os.Stdout, v)
}

// Fprint renders the storage state of v to w.
func Fprint[T, A any](c *Console, w io.Writer, v *smallvec.Vector[T, A]) {
	mode, tint := "inline", c.inline
	if v.Spilled() {
		mode, tint = "spilled", c.spilled
	}
	fmt.Fprintf(w, "vector(%s) len=%d cap=%d static=%d\n",
		tint.Sprint(mode), v.Len(), v.Cap(), v.StaticCap())
	fmt.Fprintf(w, "  [%s]\n", occupancy(v.Len(), v.Cap()))
	listElements(c, w, v)
}

// occupancy draws a bar of live vs. spare slots over the capacity.
func occupancy(used, capacity int) string {
	const cells = 32
	if capacity <= 0 {
		return strings.Repeat(".", cells)
	}
	filled := used * cells / capacity
	if used > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", cells-filled)
}

func listElements[T, A any](c *Console, w io.Writer, v *smallvec.Vector[T, A]) {
	col := 0
	for i, x := range v.All() {
		cell := fmt.Sprintf("%d:%v  ", i, x)
		if col+len(cell) > c.linewidth && col > 0 {
			fmt.Fprintln(w)
			col = 0
		}
		if col == 0 {
			fmt.Fprint(w, "  ")
			col = 2
		}
		fmt.Fprint(w, cell)
		col += len(cell)
	}
	if v.Len() > 0 {
		fmt.Fprintln(w)
	}
	spare := v.Cap() - v.Len()
	if spare > 0 {
		fmt.Fprintf(w, "  %s\n", c.spare.Sprintf("%d spare slot(s)", spare))
	}
}
