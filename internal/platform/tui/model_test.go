package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/game"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	atlas, err := sprite.NewAtlas(cfg.Sprites)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return NewModel(cfg, atlas, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 30}, nil)
}

func tick(m *Model) tea.Cmd {
	_, cmd := m.Update(TickMsg{})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeysOnlyApplyOnTick(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Session().Ship().X != 400 {
		t.Fatalf("ship moved before tick: x=%d", m.Session().Ship().X)
	}

	tick(m)
	if got := m.Session().Ship().X; got != 395 {
		t.Errorf("got x=%d, expected 395", got)
	}
}

func TestHeldKeyReleasesAfterTimeout(t *testing.T) {
	m := newTestModel(t)
	holdTicks := config.Default().Input.HoldTicks

	m.Update(runes("d"))
	for i := 0; i < holdTicks+2; i++ {
		tick(m)
	}

	// Moves for holdTicks-1 ticks, then the synthesized release stops it.
	want := 400 + 5*(holdTicks-1)
	if got := m.Session().Ship().X; got != want {
		t.Errorf("got x=%d, expected %d", got, want)
	}
	if len(m.Session().Ship().Moves()) != 0 {
		t.Errorf("got held moves %v, expected none", m.Session().Ship().Moves())
	}
}

func TestRepeatKeepsMoving(t *testing.T) {
	m := newTestModel(t)
	holdTicks := config.Default().Input.HoldTicks

	for i := 0; i < holdTicks*3; i++ {
		m.Update(runes("d"))
		tick(m)
	}

	want := 400 + 5*holdTicks*3
	if got := m.Session().Ship().X; got != want {
		t.Errorf("got x=%d, expected %d", got, want)
	}
}

func TestFireKey(t *testing.T) {
	m := newTestModel(t)

	m.Update(runes("w"))
	tick(m)

	p := m.Session().Projectile()
	if !p.Active() || p.X != 400 {
		t.Errorf("got active=%v x=%d, expected active shot at 400", p.Active(), p.X)
	}
}

func TestQuitKeyEndsWithoutEndScreen(t *testing.T) {
	m := newTestModel(t)

	m.Update(runes("q"))
	cmd := tick(m)

	if !isQuit(cmd) {
		t.Fatal("expected tea.Quit")
	}
	if m.Ended() {
		t.Error("quit should not show the end screen")
	}
	if m.Session().Reason() != game.EndQuit {
		t.Errorf("got reason %s, expected quit", m.Session().Reason())
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestEndScreenWaitsForClick(t *testing.T) {
	m := newTestModel(t)
	for _, e := range m.Session().Swarm().Enemies() {
		e.Y = 550
		e.Counter = 111
	}

	tick(m)
	if !m.Ended() {
		t.Fatal("expected end screen after escape")
	}
	if !strings.Contains(m.screen.String(), "Score: 0") || !strings.Contains(m.screen.String(), "Click to Exit") {
		t.Errorf("end screen missing text:\n%s", m.screen.String())
	}

	for i := 0; i < 5; i++ {
		if isQuit(tick(m)) {
			t.Fatal("end screen closed without a dismiss")
		}
	}

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !isQuit(tick(m)) {
		t.Error("click should close the end screen")
	}
}

func TestResize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("got screen %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("view should show the score after resize")
	}
}
