package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Back      key.Binding
	Forward   key.Binding
	DragBack  key.Binding
	DragAhead key.Binding
	Release   key.Binding
	First     key.Binding
	Last      key.Binding
	Reload    key.Binding
	Evict     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		DragBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "drag back"),
		),
		DragAhead: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "drag ahead"),
		),
		Release: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "release drag"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Evict: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle eviction"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.First, k.Last},
		{k.DragBack, k.DragAhead, k.Release},
		{k.Reload, k.Evict, k.Help, k.Quit},
	}
}
