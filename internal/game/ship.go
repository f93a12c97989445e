// Package game implements the Galaxy Raid simulation: a ship firing a single
// reusable shot at a descending swarm. It contains pure logic; presentation
// adapters feed it commands and draw the frames it produces.
package game

import (
	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/core"
)

// Ship is the player-controlled entity. It tracks the movement directions the
// player currently holds; the most recently pressed one wins.
type Ship struct {
	X, Y int

	step   int
	maxX   int
	policy string
	moves  []int // Held deltas in press order
}

// NewShip creates the ship at its start position.
func NewShip(cfg config.ShipConfig, movePolicy string) *Ship {
	return &Ship{
		X:      cfg.StartX,
		Y:      cfg.Y,
		step:   cfg.Step,
		maxX:   cfg.MaxX,
		policy: movePolicy,
		moves:  make([]int, 0, 4),
	}
}

// BeginMove records a held direction. Only ±step is accepted; any other
// delta is a contract violation and is ignored (returns false).
//
// With the stack policy a repeated press is stored again, so it takes the
// same number of releases to clear. With the held policy a direction that
// is already held keeps its original position.
func (s *Ship) BeginMove(delta int) bool {
	if delta != s.step && delta != -s.step {
		return false
	}
	if s.policy == config.MoveHeld && s.holding(delta) {
		return true
	}
	s.moves = append(s.moves, delta)
	return true
}

// EndMove removes the first matching held direction. Releasing a direction
// that is not held does nothing.
func (s *Ship) EndMove(delta int) {
	for i, m := range s.moves {
		if m == delta {
			s.moves = append(s.moves[:i], s.moves[i+1:]...)
			return
		}
	}
}

// Tick applies the most recently held direction and clamps to the field.
func (s *Ship) Tick() {
	if n := len(s.moves); n > 0 {
		s.X += s.moves[n-1]
	}
	s.X = core.Clamp(s.X, 0, s.maxX)
}

// Moves returns a copy of the held directions in press order.
func (s *Ship) Moves() []int {
	out := make([]int, len(s.moves))
	copy(out, s.moves)
	return out
}

func (s *Ship) holding(delta int) bool {
	for _, m := range s.moves {
		if m == delta {
			return true
		}
	}
	return false
}
