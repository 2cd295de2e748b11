package layout

// Tall is the default policy: wide frames put the master area on the left
// with the stack beside it, narrow frames put the master area on top. The
// width threshold comes from the params.
func Tall(panes []string, region Rect, p Params) ([]Region, error) {
	edge := EdgeTop
	if region.W >= p.WideThreshold {
		edge = EdgeLeft
	}
	return Mastered(edge, Stack)(panes, region, p)
}
