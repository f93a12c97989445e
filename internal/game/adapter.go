package game

import "github.com/vovakirdan/galaxy-raid/internal/core"

// ShipView is the ship as seen by a renderer.
type ShipView struct {
	X, Y int
}

// ProjectileView is the shot as seen by a renderer.
type ProjectileView struct {
	X       int
	Y       float64
	Visible bool // Only an active shot is drawn
}

// EnemyView is one enemy as seen by a renderer.
type EnemyView struct {
	ID   EnemyID
	X, Y int
}

// Frame is a render request: everything a presentation adapter needs to
// draw one tick. It holds copies, never live entities.
type Frame struct {
	Tick       uint64
	Ship       ShipView
	Projectile ProjectileView
	Enemies    []EnemyView
	Score      int
}

// Renderer is the render sink implemented by presentation adapters.
type Renderer interface {
	// RenderFrame draws one tick of the running game.
	RenderFrame(f Frame)

	// RenderEndScreen draws the final score. The driver then waits for a
	// dismiss before returning.
	RenderEndScreen(score int)
}

// InputSource yields the commands gathered since the previous poll.
type InputSource interface {
	Poll() []core.Command
}
