package arrange

import "fmt"

// SelectNext moves focus to the cyclically next region in layout order.
// With a single region it is a no-op.
func (e *Engine) SelectNext() error {
	return e.selectOffset(1)
}

// SelectPrevious moves focus to the cyclically previous region.
func (e *Engine) SelectPrevious() error {
	return e.selectOffset(-1)
}

func (e *Engine) selectOffset(delta int) error {
	panes := e.host.Panes()
	if len(panes) == 0 {
		return ErrEmptyPanes
	}
	if len(panes) == 1 {
		return nil
	}
	idx := indexOf(panes, e.host.Focused())
	if idx < 0 {
		return e.focus(panes[0])
	}
	return e.focus(panes[cyclic(idx+delta, len(panes))])
}

// SwapNext exchanges the focused pane with its cyclic successor. Focus
// follows the pane to its new region, dwm style: the same content stays
// focused, now shown one region over.
func (e *Engine) SwapNext() error {
	return e.swapOffset(1)
}

// SwapPrevious exchanges the focused pane with its cyclic predecessor.
func (e *Engine) SwapPrevious() error {
	return e.swapOffset(-1)
}

func (e *Engine) swapOffset(delta int) error {
	panes := e.host.Panes()
	if len(panes) == 0 {
		return ErrEmptyPanes
	}
	if len(panes) == 1 {
		return nil
	}
	focused := e.host.Focused()
	idx := indexOf(panes, focused)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrFocusLost, focused)
	}
	neighbor := panes[cyclic(idx+delta, len(panes))]
	if err := e.host.SwapPanes(focused, neighbor); err != nil {
		return fmt.Errorf("arrange: swap %q with %q: %w", focused, neighbor, err)
	}
	return e.focus(focused)
}

// IncMaster routes one more pane to the master area and re-arranges.
func (e *Engine) IncMaster() error {
	e.params.IncMaster()
	return e.Arrange()
}

// DecMaster routes one fewer pane to the master area, clamped at zero, and
// re-arranges.
func (e *Engine) DecMaster() error {
	e.params.DecMaster()
	return e.Arrange()
}

// IncFact grows the master area by one step and re-arranges.
func (e *Engine) IncFact() error {
	e.params.IncFact()
	return e.Arrange()
}

// DecFact shrinks the master area by one step and re-arranges.
func (e *Engine) DecFact() error {
	e.params.DecFact()
	return e.Arrange()
}

func cyclic(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
