package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galaxy-raid/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Dismiss, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("click/enter", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game commands.
//
// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held until no repeat has arrived for holdTicks ticks;
// Expire then emits the matching release.
type KeyMapper struct {
	keys      KeyMap
	holdTicks uint64
	lastSeen  map[core.Command]uint64 // Pressed command -> tick of last repeat
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap, holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyMapper{
		keys:      keys,
		holdTicks: uint64(holdTicks), //#nosec G115 -- checked positive above
		lastSeen:  make(map[core.Command]uint64, 2),
	}
}

// releaseOf pairs each press with its release.
var releaseOf = map[core.Command]core.Command{
	core.CommandMoveLeftPressed:  core.CommandMoveLeftReleased,
	core.CommandMoveRightPressed: core.CommandMoveRightReleased,
}

// MapKey translates a key message observed at tick into commands.
// Repeats of a held direction only refresh its hold.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, tick uint64) []core.Command {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return []core.Command{core.CommandQuitRequested}
	case key.Matches(msg, km.keys.Left):
		return km.press(core.CommandMoveLeftPressed, tick)
	case key.Matches(msg, km.keys.Right):
		return km.press(core.CommandMoveRightPressed, tick)
	case key.Matches(msg, km.keys.Fire):
		return []core.Command{core.CommandFirePressed}
	case key.Matches(msg, km.keys.Dismiss):
		return []core.Command{core.CommandDismiss}
	}
	return nil
}

func (km *KeyMapper) press(c core.Command, tick uint64) []core.Command {
	_, held := km.lastSeen[c]
	km.lastSeen[c] = tick
	if held {
		return nil
	}
	return []core.Command{c}
}

// Expire returns releases for directions not repeated within the hold
// window as of tick.
func (km *KeyMapper) Expire(tick uint64) []core.Command {
	var out []core.Command
	// Fixed order keeps releases deterministic.
	for _, c := range []core.Command{core.CommandMoveLeftPressed, core.CommandMoveRightPressed} {
		seen, held := km.lastSeen[c]
		if !held || tick-seen < km.holdTicks {
			continue
		}
		delete(km.lastSeen, c)
		out = append(out, releaseOf[c])
	}
	return out
}

// Held reports whether the press command is currently considered held.
func (km *KeyMapper) Held(c core.Command) bool {
	_, ok := km.lastSeen[c]
	return ok
}
