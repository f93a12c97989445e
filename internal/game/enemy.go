package game

import (
	"math"

	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

// EnemyID identifies an enemy within a session. IDs are never reused.
type EnemyID uint64

// EnemyState is a swarm member's lifecycle state.
type EnemyState int

const (
	EnemyReady   EnemyState = iota // Alive and advancing
	EnemyHit                       // Struck by the shot; removed at end of tick
	EnemyEscaped                   // Reached the bottom of the field
)

// String returns the state name.
func (s EnemyState) String() string {
	switch s {
	case EnemyReady:
		return "ready"
	case EnemyHit:
		return "hit"
	case EnemyEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// pathRules is shared by every enemy of a swarm.
type pathRules struct {
	cfg         config.EnemyConfig
	fieldHeight int
	mask        *sprite.Mask
}

// Enemy is one swarm member following the serpentine path.
type Enemy struct {
	ID      EnemyID
	X, Y    int
	Counter int // Ticks since the last row drop, starting at 1
	State   EnemyState

	rules *pathRules
}

func newEnemy(id EnemyID, x, y int, rules *pathRules) *Enemy {
	return &Enemy{
		ID:      id,
		X:       x,
		Y:       y,
		Counter: 1,
		State:   EnemyReady,
		rules:   rules,
	}
}

// StepsBeforeDrop returns how many ticks the enemy travels before a row drop.
func (e *Enemy) StepsBeforeDrop() int {
	return e.rules.cfg.StepsBeforeDrop
}

// Update advances a ready enemy along its path and checks for escape.
func (e *Enemy) Update() {
	if e.State != EnemyReady {
		return
	}
	e.advance()
}

// CheckCollisionAndUpdate tests the enemy against an active shot. On a hit
// the enemy is marked Hit, the shot is recycled and 1 is returned; movement
// is skipped for this tick. Otherwise the enemy advances as in Update and 0
// is returned.
func (e *Enemy) CheckCollisionAndUpdate(p *Projectile) int {
	if e.State != EnemyReady {
		return 0
	}

	dx := e.X - p.X
	dy := e.Y - int(math.RoundToEven(p.Y))
	if p.Active() && p.Mask().Overlap(e.rules.mask, dx, dy) {
		e.State = EnemyHit
		p.ResolveHit()
		return 1
	}

	e.advance()
	return 0
}

func (e *Enemy) advance() {
	cfg := e.rules.cfg

	if e.Counter%cfg.JogEvery == 0 {
		e.X += cfg.JogX
	}
	if e.Counter > cfg.StepsBeforeDrop {
		e.Y += cfg.DropY
		e.X -= cfg.RewindX
		e.Counter = 1
	} else {
		e.Counter++
	}

	if e.Y >= e.rules.fieldHeight {
		e.State = EnemyEscaped
	}
}
