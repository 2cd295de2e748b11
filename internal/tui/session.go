package tui

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/glencjones/edwina/internal/layout"
)

var paneNames = []string{"shell", "editor", "logs", "repl", "build", "docs", "top", "scratch"}

// session is the demo's in-memory pane host. It implements arrange.Host:
// an ordered pane list, the focused pane, and the partition applied last.
type session struct {
	panes   []string
	titles  map[string]string
	focused string
	width   int
	height  int
	regions []layout.Region
	created int
}

func newSession(count int) *session {
	s := &session{titles: make(map[string]string)}
	for i := 0; i < count; i++ {
		s.AddPane()
	}
	if len(s.panes) > 0 {
		s.focused = s.panes[0]
	}
	return s
}

func (s *session) Panes() []string {
	return append([]string(nil), s.panes...)
}

func (s *session) Focused() string { return s.focused }

func (s *session) FrameSize() (int, int) { return s.width, s.height }

func (s *session) Apply(regions []layout.Region) error {
	s.regions = append([]layout.Region(nil), regions...)
	return nil
}

func (s *session) Focus(pane string) error {
	for _, candidate := range s.panes {
		if candidate == pane {
			s.focused = pane
			return nil
		}
	}
	return fmt.Errorf("tui: pane %q not found", pane)
}

func (s *session) SwapPanes(a, b string) error {
	ai, bi := -1, -1
	for i, pane := range s.panes {
		switch pane {
		case a:
			ai = i
		case b:
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return fmt.Errorf("tui: panes %q/%q not found", a, b)
	}
	s.panes[ai], s.panes[bi] = s.panes[bi], s.panes[ai]
	for i := range s.regions {
		switch s.regions[i].Pane {
		case a:
			s.regions[i].Pane = b
		case b:
			s.regions[i].Pane = a
		}
	}
	return nil
}

func (s *session) Resize(width, height int) {
	s.width = width
	s.height = height
}

// AddPane appends a pane at the end of the layout order and returns its id.
func (s *session) AddPane() string {
	id := "pane-" + uuid.NewString()[:8]
	title := paneNames[s.created%len(paneNames)]
	s.created++
	s.panes = append(s.panes, id)
	s.titles[id] = title
	if s.focused == "" {
		s.focused = id
	}
	return id
}

// CloseFocused removes the focused pane. Focus moves to the pane that now
// occupies the closed pane's position, or the last pane at the end.
func (s *session) CloseFocused() {
	idx := -1
	for i, pane := range s.panes {
		if pane == s.focused {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	delete(s.titles, s.focused)
	s.panes = append(s.panes[:idx], s.panes[idx+1:]...)
	if len(s.panes) == 0 {
		s.focused = ""
		s.regions = nil
		return
	}
	if idx >= len(s.panes) {
		idx = len(s.panes) - 1
	}
	s.focused = s.panes[idx]
}

func (s *session) Title(pane string) string {
	return s.titles[pane]
}

func (s *session) Regions() []layout.Region {
	return append([]layout.Region(nil), s.regions...)
}
