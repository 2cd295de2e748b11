package layout

import (
	"errors"
	"sort"
)

// ErrNoPanes is returned by every layout function for an empty pane list.
// Callers are expected to guard before arranging.
var ErrNoPanes = errors.New("layout: no panes")

// Region binds one pane to the rectangle it occupies after layout.
type Region struct {
	Pane string
	Rect Rect
}

// Func computes a full partition of region for the given panes. The returned
// regions keep pane-list order; positional focus restoration depends on that.
type Func func(panes []string, region Rect, p Params) ([]Region, error)

var builtins = map[string]Func{
	"tall":  Tall,
	"stack": Stack,
}

// ByName resolves a registered layout function.
func ByName(name string) (Func, bool) {
	fn, ok := builtins[name]
	return fn, ok
}

// Names lists the registered layouts in stable order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
