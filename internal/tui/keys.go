package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the form list.
type KeyMap struct {
	// General
	Help    key.Binding
	Quit    key.Binding
	Refresh key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Select key.Binding
	Delete key.Binding

	// Confirmation dialog
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Press  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Refresh: key.NewBinding(key.WithKeys("r", "f5"), key.WithHelp("r", "refresh")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "tab", "h", "l"), key.WithHelp("←/→", "switch")),
		Press:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

// dialogKeys is the help shown while a confirmation is open.
type dialogKeys struct {
	k KeyMap
}

func (d dialogKeys) ShortHelp() []key.Binding {
	return []key.Binding{d.k.Yes, d.k.No, d.k.Toggle, d.k.Press}
}

func (d dialogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
