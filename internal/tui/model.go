package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glencjones/edwina/internal/arrange"
	"github.com/glencjones/edwina/internal/layout"
)

const footerHeight = 2

// ConfigReloadedMsg carries freshly loaded parameters from the config
// watcher into the event loop.
type ConfigReloadedMsg struct {
	Params layout.Params
	Err    error
}

// Model is the demo host: a pane session tiled by an arrangement engine.
type Model struct {
	session *session
	engine  *arrange.Engine
	keys    keyMap
	help    help.Model

	layoutNames []string
	activeIdx   int

	width  int
	height int
	ready  bool
	status string
	err    error
}

// NewModel builds the demo with the given parameters and active layout.
func NewModel(params layout.Params, active layout.Func, activeName string, paneCount int) Model {
	sess := newSession(paneCount)
	engine := arrange.New(sess, arrange.WithParams(params), arrange.WithLayout(active))

	names := layout.Names()
	activeIdx := 0
	for i, name := range names {
		if name == activeName {
			activeIdx = i
			break
		}
	}
	return Model{
		session:     sess,
		engine:      engine,
		keys:        defaultKeyMap(),
		help:        help.New(),
		layoutNames: names,
		activeIdx:   activeIdx,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.session.Resize(msg.Width, msg.Height-footerHeight)
		m.ready = true
		m.rearrange()
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		if err := m.engine.SetParams(msg.Params); err != nil {
			m.err = err
			return m, nil
		}
		m.status = "config reloaded"
		m.rearrange()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.err = m.engine.SelectNext()
	case key.Matches(msg, m.keys.Previous):
		m.err = m.engine.SelectPrevious()
	case key.Matches(msg, m.keys.SwapNext):
		m.err = m.engine.SwapNext()
	case key.Matches(msg, m.keys.SwapPrev):
		m.err = m.engine.SwapPrevious()
	case key.Matches(msg, m.keys.IncMaster):
		m.err = m.engine.IncMaster()
	case key.Matches(msg, m.keys.DecMaster):
		m.err = m.engine.DecMaster()
	case key.Matches(msg, m.keys.IncFact):
		m.err = m.engine.IncFact()
	case key.Matches(msg, m.keys.DecFact):
		m.err = m.engine.DecFact()
	case key.Matches(msg, m.keys.AddPane):
		m.session.AddPane()
		m.rearrange()
	case key.Matches(msg, m.keys.ClosePane):
		m.session.CloseFocused()
		m.rearrange()
	case key.Matches(msg, m.keys.CycleLayout):
		m.cycleLayout()
	}
	return m, nil
}

func (m *Model) cycleLayout() {
	if len(m.layoutNames) == 0 {
		return
	}
	m.activeIdx = (m.activeIdx + 1) % len(m.layoutNames)
	name := m.layoutNames[m.activeIdx]
	fn, ok := layout.ByName(name)
	if !ok {
		return
	}
	if err := m.engine.SetLayout(fn); err != nil {
		m.err = err
		return
	}
	m.status = "layout: " + name
	m.rearrange()
}

func (m *Model) rearrange() {
	if !m.ready {
		return
	}
	err := m.engine.Arrange()
	switch {
	case err == nil:
	case errors.Is(err, arrange.ErrEmptyPanes):
		// Closing the last pane leaves an empty frame; not an error worth
		// surfacing in the footer.
	default:
		m.err = err
	}
}

func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}
	frameHeight := m.height - footerHeight
	var frame string
	if len(m.session.Panes()) == 0 {
		frame = lipgloss.Place(m.width, frameHeight, lipgloss.Center, lipgloss.Center,
			paneDimStyle.Render("no panes - press n to open one"))
	} else {
		frame = RenderFrame(m.session.Regions(), m.width, frameHeight, m.session.Focused(), m.session.titles)
	}
	return frame + "\n" + m.footer()
}

func (m Model) footer() string {
	p := m.engine.Params()
	left := statusStyle.Render(fmt.Sprintf("[%s] panes:%d nmaster:%d mfact:%.2f",
		m.layoutNames[m.activeIdx], len(m.session.Panes()), p.NMaster, p.MFact))
	if m.status != "" {
		left += "  " + statusStyle.Render(m.status)
	}
	if m.err != nil {
		left += "  " + errorStyle.Render(m.err.Error())
	}
	return left + "\n" + m.help.View(m.keys)
}
