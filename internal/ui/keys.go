package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the live view key bindings
type keyMap struct {
	ExcludeSpaces key.Binding
	ShowAll       key.Binding
	DarkMode      key.Binding
	CharLimit     key.Binding
	Clear         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ExcludeSpaces: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "exclude spaces"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "see more"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "dark mode"),
		),
		CharLimit: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "char limit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ExcludeSpaces, k.ShowAll, k.DarkMode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ExcludeSpaces, k.ShowAll, k.CharLimit},
		{k.DarkMode, k.Clear},
		{k.Help, k.Quit},
	}
}
