package game

import (
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

// ProjectileState is the shot's lifecycle state.
type ProjectileState int

const (
	ProjectileReady  ProjectileState = iota // Waiting to be launched
	ProjectileActive                        // In flight
)

// String returns the state name.
func (s ProjectileState) String() string {
	if s == ProjectileActive {
		return "active"
	}
	return "ready"
}

// Projectile is the ship's single shot. One instance exists per session and
// is recycled on every launch.
type Projectile struct {
	X int
	Y float64

	speed float64
	state ProjectileState
	mask  *sprite.Mask
}

// NewProjectile creates a ready projectile.
func NewProjectile(speed float64, mask *sprite.Mask) *Projectile {
	return &Projectile{speed: speed, mask: mask}
}

// Launch fires the shot from (x, y). It does nothing while the shot is
// already in flight and reports whether a launch happened.
func (p *Projectile) Launch(x, y int) bool {
	if p.state != ProjectileReady {
		return false
	}
	p.X = x
	p.Y = float64(y)
	p.state = ProjectileActive
	return true
}

// Tick moves an active shot upward and recycles it once it leaves the top.
func (p *Projectile) Tick() {
	if p.state != ProjectileActive {
		return
	}
	p.Y -= p.speed
	if p.Y < 0 {
		p.state = ProjectileReady
	}
}

// ResolveHit recycles the shot after it struck an enemy.
func (p *Projectile) ResolveHit() {
	p.state = ProjectileReady
}

// State returns the current lifecycle state.
func (p *Projectile) State() ProjectileState {
	return p.state
}

// Active reports whether the shot is in flight.
func (p *Projectile) Active() bool {
	return p.state == ProjectileActive
}

// Mask returns the shot's collision mask.
func (p *Projectile) Mask() *sprite.Mask {
	return p.mask
}
