package layout

// Stack divides region into equal-height strips, one pane per strip in list
// order. Strip height is ceil(H/n); the final strip absorbs the rounding
// remainder so the partition is exact. A single pane takes the whole region.
func Stack(panes []string, region Rect, _ Params) ([]Region, error) {
	if len(panes) == 0 {
		return nil, ErrNoPanes
	}
	n := len(panes)
	if n == 1 {
		return []Region{{Pane: panes[0], Rect: region}}, nil
	}
	strip := (region.H + n - 1) / n
	regions := make([]Region, 0, n)
	y := region.Y
	remaining := region.H
	for i, pane := range panes {
		h := strip
		if left := n - i; h > remaining-(left-1) {
			h = remaining - (left - 1)
		}
		if i == n-1 {
			h = remaining
		}
		if h < 1 {
			h = 1
		}
		regions = append(regions, Region{Pane: pane, Rect: Rect{X: region.X, Y: y, W: region.W, H: h}})
		y += h
		remaining -= h
	}
	return regions, nil
}
