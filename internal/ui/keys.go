package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PullDown  key.Binding
	PullLeft  key.Binding
	Release   key.Binding
	Selector  key.Binding
	Morning   key.Binding
	Afternoon key.Binding
	Dusk      key.Binding
	Resonance key.Binding
	Luggage   key.Binding
	Close     key.Binding
	Up        key.Binding
	Down      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PullDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pull page"),
		),
		PullLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "swipe strip"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "let go"),
		),
		Selector: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mood"),
		),
		Morning: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "morning"),
		),
		Afternoon: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "afternoon"),
		),
		Dusk: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "dusk"),
		),
		Resonance: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resonance"),
		),
		Luggage: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "luggage"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
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

// ShortHelp implements help.KeyMap. It is the hint on the main screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap. It is the key table in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PullDown, k.PullLeft, k.Release},
		{k.Selector, k.Morning, k.Afternoon, k.Dusk},
		{k.Resonance, k.Luggage, k.Close},
		{k.Help, k.Quit},
	}
}

// panelKeys is the short help shown inside an overlay panel.
func (k keyMap) panelKeys() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close, k.Quit}
}
