package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Action represents a semantic game action, abstracted from the key pressed.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionRight
	ActionDown
	ActionLeft
	ActionNewGame
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the move direction for the four move actions.
func (a Action) Direction() (t2048.Direction, bool) {
	switch a {
	case ActionUp:
		return t2048.North, true
	case ActionRight:
		return t2048.East, true
	case ActionDown:
		return t2048.South, true
	case ActionLeft:
		return t2048.West, true
	default:
		return 0, false
	}
}

// Keymap translates key names to actions. Lookups ignore case.
type Keymap struct {
	actions map[string]Action
}

// NewKeymap builds a keymap, rejecting keys bound to more than one action.
func NewKeymap(keys KeyConfig) (*Keymap, error) {
	km := &Keymap{actions: make(map[string]Action)}

	bindings := []struct {
		action Action
		keys   []string
	}{
		{ActionUp, keys.Up},
		{ActionRight, keys.Right},
		{ActionDown, keys.Down},
		{ActionLeft, keys.Left},
		{ActionNewGame, keys.NewGame},
		{ActionQuit, keys.Quit},
	}

	for _, b := range bindings {
		for _, key := range b.keys {
			name := normalizeKey(key)
			if name == "" {
				return nil, fmt.Errorf("config: empty key bound to %s", b.action)
			}
			if prev, ok := km.actions[name]; ok && prev != b.action {
				return nil, fmt.Errorf("config: key %q bound to both %s and %s", key, prev, b.action)
			}
			km.actions[name] = b.action
		}
	}

	return km, nil
}

// Resolve returns the action bound to key, or ActionNone.
func (km *Keymap) Resolve(key string) Action {
	return km.actions[normalizeKey(key)]
}

// Keys returns the key names bound to action, sorted.
func (km *Keymap) Keys(action Action) []string {
	var keys []string
	for k, a := range km.actions {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
