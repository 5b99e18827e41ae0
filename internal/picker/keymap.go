package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the logical action bindings. Digits 0-9 are handled
// separately as jump input.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	RangeToggle  key.Binding
	Confirm      key.Binding
	Quit         key.Binding
	MoveLineUp   key.Binding
	MoveLineDown key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+p"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+n"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "select"),
		),
		RangeToggle: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "select range"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "finish"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		MoveLineUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move line up"),
		),
		MoveLineDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move line down"),
		),
	}
}
