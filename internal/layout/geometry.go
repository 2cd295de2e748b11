package layout

type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Edge names a side of a rectangle. Split carves from this side.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) Axis() Axis {
	switch e {
	case EdgeTop, EdgeBottom:
		return AxisVertical
	default:
		return AxisHorizontal
	}
}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Extent returns the rectangle's size along the given axis.
func (r Rect) Extent(a Axis) int {
	if a == AxisVertical {
		return r.H
	}
	return r.W
}

// Split carves size cells from the named edge of r and returns the carved
// rectangle followed by the remainder. A negative size is measured from the
// opposite edge. The carve is clamped to [1, extent-1] so both halves stay
// visible; a rectangle too small to split is returned whole with an empty
// remainder.
func Split(r Rect, size int, edge Edge) (Rect, Rect) {
	extent := r.Extent(edge.Axis())
	if extent < 2 {
		return r, Rect{}
	}
	if size < 0 {
		size = extent + size
	}
	if size < 1 {
		size = 1
	}
	if size > extent-1 {
		size = extent - 1
	}
	rest := extent - size
	switch edge {
	case EdgeLeft:
		return Rect{X: r.X, Y: r.Y, W: size, H: r.H},
			Rect{X: r.X + size, Y: r.Y, W: rest, H: r.H}
	case EdgeRight:
		return Rect{X: r.X + rest, Y: r.Y, W: size, H: r.H},
			Rect{X: r.X, Y: r.Y, W: rest, H: r.H}
	case EdgeTop:
		return Rect{X: r.X, Y: r.Y, W: r.W, H: size},
			Rect{X: r.X, Y: r.Y + size, W: r.W, H: rest}
	default: // EdgeBottom
		return Rect{X: r.X, Y: r.Y + rest, W: r.W, H: size},
			Rect{X: r.X, Y: r.Y, W: r.W, H: rest}
	}
}
