package layout

import "math"

// Mastered builds a layout function that carves a master area from the named
// edge of the region, stacks up to NMaster panes into it, and delegates the
// rest to inner. NMaster and MFact are read from the params at call time, so
// a constructed function tracks live parameter changes.
//
// When the master side is empty the stack owns the whole region, and vice
// versa; a region is only carved when both sides have panes.
func Mastered(edge Edge, inner Func) Func {
	return func(panes []string, region Rect, p Params) ([]Region, error) {
		if len(panes) == 0 {
			return nil, ErrNoPanes
		}
		n := p.NMaster
		if n < 0 {
			n = 0
		}
		if n > len(panes) {
			n = len(panes)
		}
		master, rest := panes[:n], panes[n:]
		if len(rest) == 0 {
			return Stack(master, region, p)
		}
		if len(master) == 0 {
			return inner(rest, region, p)
		}
		extent := region.Extent(edge.Axis())
		msize := int(math.Round(p.MFact * float64(extent)))
		masterRect, stackRect := Split(region, msize, edge)
		regions, err := Stack(master, masterRect, p)
		if err != nil {
			return nil, err
		}
		stacked, err := inner(rest, stackRect, p)
		if err != nil {
			return nil, err
		}
		return append(regions, stacked...), nil
	}
}
