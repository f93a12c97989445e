package game

import (
	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

// Swarm owns the live enemies. Enemies live in an arena keyed by ID; order
// keeps the stable iteration order. Hit enemies stay in the arena until
// Compact runs at the end of the tick, so a sweep never mutates the
// collection it is walking.
type Swarm struct {
	cfg   config.SwarmConfig
	rules *pathRules

	byID   map[EnemyID]*Enemy
	order  []EnemyID
	nextID EnemyID

	cursorX, cursorY int // Spawn cursor
	waves            int
}

// NewSwarm creates an empty swarm with the spawn cursor at the origin.
func NewSwarm(cfg config.SwarmConfig, enemy config.EnemyConfig, fieldHeight int, mask *sprite.Mask) *Swarm {
	return &Swarm{
		cfg: cfg,
		rules: &pathRules{
			cfg:         enemy,
			fieldHeight: fieldHeight,
			mask:        mask,
		},
		byID:    make(map[EnemyID]*Enemy, cfg.Size),
		order:   make([]EnemyID, 0, cfg.Size),
		nextID:  1,
		cursorX: cfg.OriginX,
		cursorY: cfg.OriginY,
	}
}

// Sweep updates every live enemy once, in order. While the shot is active
// each enemy runs the collision-aware update; the first enemy to overlap it
// claims the hit because the shot is recycled immediately. Returns the score
// gained this sweep.
func (sw *Swarm) Sweep(p *Projectile) int {
	gained := 0
	for _, id := range sw.order {
		e := sw.byID[id]
		if p.Active() {
			gained += e.CheckCollisionAndUpdate(p)
		} else {
			e.Update()
		}
	}
	return gained
}

// Compact removes every Hit enemy and returns how many were removed.
func (sw *Swarm) Compact() int {
	kept := sw.order[:0]
	removed := 0
	for _, id := range sw.order {
		if sw.byID[id].State == EnemyHit {
			delete(sw.byID, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	sw.order = kept
	return removed
}

// Escaped reports whether any enemy reached the bottom of the field.
func (sw *Swarm) Escaped() bool {
	for _, id := range sw.order {
		if sw.byID[id].State == EnemyEscaped {
			return true
		}
	}
	return false
}

// Spawn adds a fresh wave laid out row-major from the spawn cursor, wrapping
// to a new row after PerRow columns. With the carry policy the cursor keeps
// its position between waves, so later waves start where the previous one
// stopped.
func (sw *Swarm) Spawn() {
	if sw.cfg.CursorPolicy == config.CursorReset {
		sw.cursorX, sw.cursorY = sw.cfg.OriginX, sw.cfg.OriginY
	}

	rowEnd := sw.cfg.OriginX + sw.cfg.PerRow*sw.cfg.Spacing
	for i := 0; i < sw.cfg.Size; i++ {
		if sw.cursorX >= rowEnd {
			sw.cursorX = sw.cfg.OriginX
			sw.cursorY += sw.cfg.Spacing
		}

		e := newEnemy(sw.nextID, sw.cursorX, sw.cursorY, sw.rules)
		sw.byID[e.ID] = e
		sw.order = append(sw.order, e.ID)
		sw.nextID++

		sw.cursorX += sw.cfg.Spacing
	}
	sw.waves++
}

// Len returns the number of enemies in the swarm.
func (sw *Swarm) Len() int {
	return len(sw.order)
}

// Wave returns how many waves have been spawned.
func (sw *Swarm) Wave() int {
	return sw.waves
}

// Cursor returns the spawn cursor position.
func (sw *Swarm) Cursor() (int, int) {
	return sw.cursorX, sw.cursorY
}

// Get returns the enemy with the given ID.
func (sw *Swarm) Get(id EnemyID) (*Enemy, bool) {
	e, ok := sw.byID[id]
	return e, ok
}

// Enemies returns the live enemies in iteration order.
func (sw *Swarm) Enemies() []*Enemy {
	out := make([]*Enemy, 0, len(sw.order))
	for _, id := range sw.order {
		out = append(out, sw.byID[id])
	}
	return out
}
