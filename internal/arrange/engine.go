package arrange

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/glencjones/edwina/internal/layout"
)

// Engine runs arrangement passes against a single Host. It owns its layout
// parameters and active layout function; nothing is shared between engines,
// so one engine per frame is the expected shape. The engine performs no
// locking: callers serialize access, typically via a UI event loop.
type Engine struct {
	host   Host
	params layout.Params
	active layout.Func
	log    *slog.Logger
}

type Option func(*Engine)

// WithParams seeds the engine with non-default layout parameters.
func WithParams(p layout.Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithLayout selects the active layout function.
func WithLayout(fn layout.Func) Option {
	return func(e *Engine) {
		if fn != nil {
			e.active = fn
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an engine for host. Defaults: Tall layout, default parameters.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		host:   host,
		params: layout.DefaultParams(),
		active: layout.Tall,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Params() layout.Params {
	return e.params
}

// SetParams replaces the parameter set. Values outside the clamped mutators'
// reach are rejected before anything is torn down.
func (e *Engine) SetParams(p layout.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.params = p
	return nil
}

// SetLayout replaces the active layout function.
func (e *Engine) SetLayout(fn layout.Func) error {
	if fn == nil {
		return errors.New("arrange: layout function must not be nil")
	}
	e.active = fn
	return nil
}

// Arrange runs one full pass: snapshot panes and focus, compute the
// partition, apply it, and restore focus. The focused pane is recorded both
// by identity and by position; identity wins when the two disagree.
func (e *Engine) Arrange() error {
	panes := e.host.Panes()
	if len(panes) == 0 {
		return ErrEmptyPanes
	}
	if err := e.params.Validate(); err != nil {
		return err
	}
	focused := e.host.Focused()
	idx := indexOf(panes, focused)

	w, h := e.host.FrameSize()
	frame := layout.Rect{W: w, H: h}
	regions, err := e.active(panes, frame, e.params)
	if err != nil {
		return fmt.Errorf("arrange: compute layout: %w", err)
	}
	if err := e.host.Apply(regions); err != nil {
		return fmt.Errorf("arrange: apply regions: %w", err)
	}
	return e.restoreFocus(focused, idx)
}

func (e *Engine) restoreFocus(focused string, idx int) error {
	after := e.host.Panes()
	if len(after) == 0 {
		return ErrFocusLost
	}
	if idx >= 0 && idx < len(after) && after[idx] == focused {
		return e.focus(focused)
	}
	for _, pane := range after {
		if pane == focused {
			return e.focus(pane)
		}
	}
	e.log.Warn("focused pane gone after arrange, falling back to first region",
		"focused", focused)
	if err := e.focus(after[0]); err != nil {
		return err
	}
	return fmt.Errorf("%w: %q", ErrFocusLost, focused)
}

func (e *Engine) focus(pane string) error {
	if err := e.host.Focus(pane); err != nil {
		return fmt.Errorf("arrange: focus %q: %w", pane, err)
	}
	return nil
}

func indexOf(panes []string, pane string) int {
	for i, candidate := range panes {
		if candidate == pane {
			return i
		}
	}
	return -1
}
