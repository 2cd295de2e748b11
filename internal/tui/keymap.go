package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next        key.Binding
	Previous    key.Binding
	SwapNext    key.Binding
	SwapPrev    key.Binding
	IncMaster   key.Binding
	DecMaster   key.Binding
	IncFact     key.Binding
	DecFact     key.Binding
	AddPane     key.Binding
	ClosePane   key.Binding
	CycleLayout key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "tab"),
			key.WithHelp("j/tab", "focus next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("k", "shift+tab"),
			key.WithHelp("k", "focus prev"),
		),
		SwapNext: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "swap next"),
		),
		SwapPrev: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "swap prev"),
		),
		IncMaster: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "more masters"),
		),
		DecMaster: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "fewer masters"),
		),
		IncFact: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "grow master"),
		),
		DecFact: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "shrink master"),
		),
		AddPane: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new pane"),
		),
		ClosePane: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close pane"),
		),
		CycleLayout: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.SwapNext, k.IncMaster, k.IncFact, k.AddPane, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.SwapNext, k.SwapPrev},
		{k.IncMaster, k.DecMaster, k.IncFact, k.DecFact},
		{k.AddPane, k.ClosePane, k.CycleLayout},
		{k.Help, k.Quit},
	}
}
