// Package headless drives a game session without a display. It feeds
// scripted commands through game.Run and records what would have been drawn.
package headless

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/game"
)

// ErrBadScript is returned for unreadable command scripts.
var ErrBadScript = errors.New("headless: invalid script")

// ScriptEvent schedules commands for one tick.
type ScriptEvent struct {
	Tick     uint64   `yaml:"tick"`
	Commands []string `yaml:"commands"`
}

// Script describes the input of a simulated game.
type Script struct {
	// Ticks ends the run with a quit after this many ticks; 0 runs until the
	// swarm escapes.
	Ticks uint64

	// FireEvery fires every n ticks; 0 never fires.
	FireEvery uint64

	// Strafe sweeps the ship, switching direction every n ticks; 0 stays put.
	Strafe uint64

	// Events are explicit commands keyed by tick.
	Events map[uint64][]core.Command
}

// LoadScript reads explicit events from a YAML list of {tick, commands}.
func LoadScript(path string) (map[uint64][]core.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("headless: read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses YAML script events. Command names are those printed by
// core.Command.String.
func ParseScript(data []byte) (map[uint64][]core.Command, error) {
	var raw []ScriptEvent
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadScript, err)
	}

	events := make(map[uint64][]core.Command, len(raw))
	for _, ev := range raw {
		if ev.Tick == 0 {
			return nil, fmt.Errorf("%w: ticks start at 1", ErrBadScript)
		}
		for _, name := range ev.Commands {
			c, ok := core.ParseCommand(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown command %q at tick %d", ErrBadScript, name, ev.Tick)
			}
			events[ev.Tick] = append(events[ev.Tick], c)
		}
	}
	return events, nil
}

// Driver is both the input source and the render sink of a headless run.
type Driver struct {
	script Script
	logger *log.Logger

	polls   uint64
	frames  int
	last    game.Frame
	ended   bool
	heading core.Command // Current strafe direction, or CommandNone
}

// NewDriver creates a driver for the given script. A nil logger discards
// output.
func NewDriver(script Script, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{script: script, logger: logger}
}

// Poll returns the scripted commands for the next tick. Once the end screen
// is shown it dismisses it.
func (d *Driver) Poll() []core.Command {
	if d.ended {
		return []core.Command{core.CommandDismiss}
	}

	d.polls++
	tick := d.polls
	if d.script.Ticks > 0 && tick > d.script.Ticks {
		return []core.Command{core.CommandQuitRequested}
	}

	var out []core.Command
	if s := d.script.Strafe; s > 0 && (tick == 1 || (tick-1)%s == 0) {
		out = append(out, d.turn()...)
	}
	if n := d.script.FireEvery; n > 0 && tick%n == 0 {
		out = append(out, core.CommandFirePressed)
	}
	out = append(out, d.script.Events[tick]...)
	return out
}

// turn releases the current strafe direction and presses the other one.
func (d *Driver) turn() []core.Command {
	switch d.heading {
	case core.CommandMoveRightPressed:
		d.heading = core.CommandMoveLeftPressed
		return []core.Command{core.CommandMoveRightReleased, core.CommandMoveLeftPressed}
	case core.CommandMoveLeftPressed:
		d.heading = core.CommandMoveRightPressed
		return []core.Command{core.CommandMoveLeftReleased, core.CommandMoveRightPressed}
	default:
		d.heading = core.CommandMoveRightPressed
		return []core.Command{core.CommandMoveRightPressed}
	}
}

// RenderFrame records the frame.
func (d *Driver) RenderFrame(f game.Frame) {
	d.frames++
	d.last = f
	if f.Tick%300 == 0 {
		d.logger.Debug("frame", "tick", f.Tick, "score", f.Score, "enemies", len(f.Enemies))
	}
}

// RenderEndScreen records the final score.
func (d *Driver) RenderEndScreen(score int) {
	d.ended = true
	d.logger.Info("end screen", "score", score)
}

// Summary describes a finished headless run.
type Summary struct {
	Ticks     uint64
	Frames    int
	Score     int
	Reason    string
	EndScreen bool
	Last      game.Frame
}

// Summary returns what the driver observed.
func (d *Driver) Summary(res game.StepResult) Summary {
	return Summary{
		Ticks:     res.Tick,
		Frames:    d.frames,
		Score:     res.Score,
		Reason:    res.Reason.String(),
		EndScreen: d.ended,
		Last:      d.last,
	}
}
