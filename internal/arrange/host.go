package arrange

import "github.com/glencjones/edwina/internal/layout"

// Host is the collaborator that owns panes, regions, and focus. The engine
// never holds on to anything a Host returns beyond the current call.
//
// Panes must report the current panes in layout order, and Apply must leave
// that order unchanged; focus restoration relies on it. Focused must return
// a member of Panes.
type Host interface {
	// Panes returns the pane identities in layout order.
	Panes() []string
	// Focused returns the currently focused pane.
	Focused() string
	// FrameSize returns the width and height of the frame being tiled.
	FrameSize() (int, int)
	// Apply tears down the existing regions and installs the given
	// partition, binding each pane to its rectangle.
	Apply(regions []layout.Region) error
	// Focus moves focus to the region bound to the given pane.
	Focus(pane string) error
	// SwapPanes exchanges the regions bound to two panes without
	// recomputing geometry, swapping their layout-order positions.
	SwapPanes(a, b string) error
}
