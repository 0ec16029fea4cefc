package inspect

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/npillmayer/smallvec"
)

func plainConsole() *Console {
	return &Console{
		linewidth: 65,
		inline:    color.New(),
		spilled:   color.New(),
		spare:     color.New(),
	}
}

func TestFprintInline(t *testing.T) {
	color.NoColor = true
	v, err := smallvec.Of[int, [4]int](1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	Fprint(plainConsole(), &sb, v)
	out := sb.String()
	if !strings.Contains(out, "vector(inline) len=3 cap=4 static=4") {
		t.Errorf("header missing, got:\n%s", out)
	}
	if !strings.Contains(out, "0:1") || !strings.Contains(out, "2:3") {
		t.Errorf("element listing missing, got:\n%s", out)
	}
	if !strings.Contains(out, "1 spare slot(s)") {
		t.Errorf("spare slots missing, got:\n%s", out)
	}
}

func TestFprintSpilled(t *testing.T) {
	color.NoColor = true
	v, err := smallvec.Of[int, [4]int](1, 2, 3, 4, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	Fprint(plainConsole(), &sb, v)
	if !strings.Contains(sb.String(), "vector(spilled)") {
		t.Errorf("spilled mode not reported, got:\n%s", sb.String())
	}
}

func TestOccupancyBar(t *testing.T) {
	if got := occupancy(0, 8); strings.Contains(got, "#") {
		t.Errorf("empty vector bar = %q", got)
	}
	if got := occupancy(8, 8); strings.Contains(got, ".") {
		t.Errorf("full vector bar = %q", got)
	}
	if got := occupancy(1, 1000); !strings.Contains(got, "#") {
		t.Errorf("non-empty vector must show at least one cell, got %q", got)
	}
}
