package layout

import (
	"errors"
	"fmt"
	"testing"
)

// checkPartition verifies the partition property: one region per pane in list
// order, full cover of the frame, no overlaps.
func checkPartition(t *testing.T, panes []string, region Rect, regions []Region) {
	t.Helper()
	if len(regions) != len(panes) {
		t.Fatalf("got %d regions for %d panes", len(regions), len(panes))
	}
	area := 0
	for i, reg := range regions {
		if reg.Pane != panes[i] {
			t.Fatalf("region %d bound to %q, want %q (order must be preserved)", i, reg.Pane, panes[i])
		}
		r := reg.Rect
		if r.Empty() {
			t.Fatalf("region %d for %q is empty: %v", i, reg.Pane, r)
		}
		if r.X < region.X || r.Y < region.Y || r.X+r.W > region.X+region.W || r.Y+r.H > region.Y+region.H {
			t.Fatalf("region %v escapes frame %v", r, region)
		}
		area += r.W * r.H
		for j := 0; j < i; j++ {
			if overlaps(r, regions[j].Rect) {
				t.Fatalf("regions %d and %d overlap: %v vs %v", i, j, r, regions[j].Rect)
			}
		}
	}
	if want := region.W * region.H; area != want {
		t.Fatalf("regions cover %d cells, frame has %d", area, want)
	}
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func paneList(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("pane-%d", i)
	}
	return out
}

func TestPartitionProperty(t *testing.T) {
	frames := []Rect{
		{W: 200, H: 50},   // wide: master left
		{W: 80, H: 40},    // narrow: master top
		{W: 132, H: 43},   // exactly at threshold
		{X: 7, Y: 3, W: 101, H: 37}, // offset, odd sizes
	}
	for _, frame := range frames {
		for n := 1; n <= 7; n++ {
			name := fmt.Sprintf("%dx%d_%dpanes", frame.W, frame.H, n)
			t.Run(name, func(t *testing.T) {
				panes := paneList(n)
				regions, err := Tall(panes, frame, DefaultParams())
				if err != nil {
					t.Fatalf("Tall: %v", err)
				}
				checkPartition(t, panes, frame, regions)
			})
		}
	}
}

func TestLayoutFuncsRejectEmptyList(t *testing.T) {
	for _, name := range Names() {
		fn, _ := ByName(name)
		if _, err := fn(nil, Rect{W: 100, H: 100}, DefaultParams()); !errors.Is(err, ErrNoPanes) {
			t.Fatalf("%s(nil panes) err = %v, want ErrNoPanes", name, err)
		}
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no registered layouts")
	}
	for _, name := range names {
		if _, ok := ByName(name); !ok {
			t.Fatalf("ByName(%q) missing", name)
		}
	}
	if _, ok := ByName("spiral"); ok {
		t.Fatal("ByName should miss unknown names")
	}
}
