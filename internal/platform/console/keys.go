package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// KeyMap holds the bindings shown in the help line. Moves, new game and
// quit come from the configured keymap; Yes and No answer confirmations.
type KeyMap struct {
	Up      key.Binding
	Right   key.Binding
	Down    key.Binding
	Left    key.Binding
	NewGame key.Binding
	Quit    key.Binding
	Yes     key.Binding
	No      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Right, k.Down, k.Left, k.NewGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Right, k.Down, k.Left},
		{k.NewGame, k.Quit},
	}
}

// NewKeyMap builds help bindings from a resolved keymap.
func NewKeyMap(km *config.Keymap) KeyMap {
	bind := func(a config.Action, desc string) key.Binding {
		keys := km.Keys(a)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}

	return KeyMap{
		Up:      bind(config.ActionUp, "up"),
		Right:   bind(config.ActionRight, "right"),
		Down:    bind(config.ActionDown, "down"),
		Left:    bind(config.ActionLeft, "left"),
		NewGame: bind(config.ActionNewGame, "new game"),
		Quit:    bind(config.ActionQuit, "quit"),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "no"),
		),
	}
}
