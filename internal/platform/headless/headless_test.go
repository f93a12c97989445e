package headless

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/game"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	cfg := config.Default()
	atlas, err := sprite.NewAtlas(cfg.Sprites)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return game.NewSession(cfg, atlas, nil)
}

func TestParseScript(t *testing.T) {
	data := []byte(`
- tick: 1
  commands: [MoveLeftPressed, FirePressed]
- tick: 20
  commands: [MoveLeftReleased]
`)
	events, err := ParseScript(data)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(events[1]) != 2 || events[1][1] != core.CommandFirePressed {
		t.Errorf("tick 1: got %v", events[1])
	}
	if len(events[20]) != 1 || events[20][0] != core.CommandMoveLeftReleased {
		t.Errorf("tick 20: got %v", events[20])
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a list", "tick: 1"},
		{"unknown command", "- tick: 1\n  commands: [Jump]"},
		{"tick zero", "- tick: 0\n  commands: [FirePressed]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			if !errors.Is(err, ErrBadScript) {
				t.Errorf("got %v, expected ErrBadScript", err)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte("- tick: 3\n  commands: [FirePressed]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	events, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(events[3]) != 1 {
		t.Errorf("got %v, expected one command at tick 3", events)
	}

	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDriverStrafe(t *testing.T) {
	d := NewDriver(Script{Strafe: 3}, nil)

	want := map[int][]core.Command{
		1: {core.CommandMoveRightPressed},
		4: {core.CommandMoveRightReleased, core.CommandMoveLeftPressed},
		7: {core.CommandMoveLeftReleased, core.CommandMoveRightPressed},
	}
	for tick := 1; tick <= 7; tick++ {
		got := d.Poll()
		if len(got) != len(want[tick]) {
			t.Fatalf("tick %d: got %v, expected %v", tick, got, want[tick])
		}
		for i := range got {
			if got[i] != want[tick][i] {
				t.Errorf("tick %d: got %v, expected %v", tick, got, want[tick])
			}
		}
	}
}

func TestRunUntilQuit(t *testing.T) {
	s := newSession(t)
	d := NewDriver(Script{Ticks: 200, FireEvery: 10, Strafe: 40}, nil)

	res, err := game.Run(context.Background(), s, d, d, game.Unpaced{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sum := d.Summary(res)
	if sum.Ticks != 200 || sum.Frames != 200 {
		t.Errorf("got ticks=%d frames=%d, expected 200 and 200", sum.Ticks, sum.Frames)
	}
	if sum.Reason != "quit" || sum.EndScreen {
		t.Errorf("got reason=%s endScreen=%v, expected quit without end screen", sum.Reason, sum.EndScreen)
	}
	if sum.Last.Tick != 200 {
		t.Errorf("got last frame tick %d, expected 200", sum.Last.Tick)
	}
}

func TestRunUntilEscape(t *testing.T) {
	s := newSession(t)
	d := NewDriver(Script{}, nil)

	res, err := game.Run(context.Background(), s, d, d, game.Unpaced{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sum := d.Summary(res)
	if sum.Reason != "escaped" || !sum.EndScreen {
		t.Errorf("got reason=%s endScreen=%v, expected escaped with end screen", sum.Reason, sum.EndScreen)
	}
	if sum.Ticks != 1110 || sum.Score != 0 {
		t.Errorf("got ticks=%d score=%d, expected 1110 and 0", sum.Ticks, sum.Score)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() game.Snapshot {
		s := newSession(t)
		d := NewDriver(Script{Ticks: 900, FireEvery: 7, Strafe: 25}, nil)
		if _, err := game.Run(context.Background(), s, d, d, game.Unpaced{}); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}
