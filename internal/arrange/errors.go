package arrange

import "errors"

var (
	// ErrEmptyPanes is returned when an arrangement is requested with no
	// panes. Nothing is torn down in that case.
	ErrEmptyPanes = errors.New("arrange: no panes to arrange")

	// ErrFocusLost is returned when the pane that held focus before an
	// arrangement is gone afterwards. The engine falls back to focusing
	// the first region and reports the loss instead of crashing.
	ErrFocusLost = errors.New("arrange: focused pane missing after arrange")
)
