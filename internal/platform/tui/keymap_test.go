package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galaxy-raid/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeftPressed},
		{"a", runes("a"), core.CommandMoveLeftPressed},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRightPressed},
		{"l", runes("l"), core.CommandMoveRightPressed},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandFirePressed},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandDismiss},
		{"q", runes("q"), core.CommandQuitRequested},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandQuitRequested},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.CommandQuitRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper(DefaultKeyMap(), 12)
			got := km.MapKey(tt.msg, 0)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("got %v, expected [%s]", got, tt.want)
			}
		})
	}
}

func TestMapKeyUnbound(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 12)
	if got := km.MapKey(runes("z"), 0); len(got) != 0 {
		t.Errorf("got %v, expected nothing", got)
	}
}

func TestKeyMapperHold(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 3)

	if got := km.MapKey(runes("a"), 0); len(got) != 1 {
		t.Fatalf("first press: got %v", got)
	}
	if got := km.MapKey(runes("a"), 1); len(got) != 0 {
		t.Fatalf("repeat should not press again: got %v", got)
	}

	if got := km.Expire(3); len(got) != 0 {
		t.Fatalf("expired too early: %v", got)
	}
	got := km.Expire(4)
	if len(got) != 1 || got[0] != core.CommandMoveLeftReleased {
		t.Fatalf("got %v, expected [MoveLeftReleased]", got)
	}
	if km.Held(core.CommandMoveLeftPressed) {
		t.Error("direction should no longer be held")
	}

	if got := km.MapKey(runes("a"), 5); len(got) != 1 || got[0] != core.CommandMoveLeftPressed {
		t.Errorf("press after release: got %v", got)
	}
}

func TestKeyMapperReleasesBothDirections(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 2)
	km.MapKey(runes("d"), 0)
	km.MapKey(runes("a"), 0)

	got := km.Expire(2)
	want := []core.Command{core.CommandMoveLeftReleased, core.CommandMoveRightReleased}
	if len(got) != len(want) {
		t.Fatalf("got %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("release %d: got %s, expected %s", i, got[i], want[i])
		}
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 4 {
		t.Errorf("got %d short help bindings, expected 4", len(keys.ShortHelp()))
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
