package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Shout      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shout, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shout, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. The shout key only exists when
// the keyboard stands in for the microphone.
func DefaultKeyMap(keyboardInput bool) KeyMap {
	k := KeyMap{
		Shout: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "shout"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
	k.Shout.SetEnabled(keyboardInput)
	k.Restart.SetEnabled(false)
	return k
}
