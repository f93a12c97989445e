package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

// Phase is the simulation loop state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "running"
}

// EndReason explains why a session ended.
type EndReason int

const (
	EndNone    EndReason = iota
	EndEscaped           // An enemy reached the bottom: the game is lost
	EndQuit              // The player quit; no end screen is shown
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndEscaped:
		return "escaped"
	case EndQuit:
		return "quit"
	default:
		return "none"
	}
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	Phase  Phase
	Reason EndReason
	Score  int
	Gained int // Score gained this tick
	Tick   uint64
}

// Session is one game from first tick to end screen. It owns every entity
// and all state that would otherwise be global: score, tick counter, field
// size and logger.
type Session struct {
	cfg    config.GalaxyConfig
	ship   *Ship
	shot   *Projectile
	swarm  *Swarm
	score  int
	tick   uint64
	phase  Phase
	reason EndReason
	logger *log.Logger
}

// NewSession creates a running session with the first wave in place.
// A nil logger discards output.
func NewSession(cfg config.GalaxyConfig, atlas *sprite.Atlas, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:    cfg,
		ship:   NewShip(cfg.Ship, cfg.Input.MovePolicy),
		shot:   NewProjectile(cfg.Projectile.Speed, atlas.Mask(sprite.KindShot)),
		swarm:  NewSwarm(cfg.Swarm, cfg.Enemy, cfg.Field.Height, atlas.Mask(sprite.KindEnemy)),
		logger: logger,
	}
	s.spawnWave()
	return s
}

// Step advances the simulation by one tick:
// commands, ship, shot, swarm sweep with collisions, compaction and escape
// check, then wave regeneration. A QuitRequested anywhere in cmds ends the
// session before anything else is applied. Stepping an ended session does
// nothing.
func (s *Session) Step(cmds []core.Command) StepResult {
	if s.phase == PhaseEnded {
		return s.result(0)
	}

	for _, c := range cmds {
		if c == core.CommandQuitRequested {
			s.end(EndQuit)
			return s.result(0)
		}
	}

	s.tick++
	s.apply(cmds)

	s.ship.Tick()
	s.shot.Tick()

	gained := s.swarm.Sweep(s.shot)
	if gained > 0 {
		s.score += gained
		s.logger.Debug("enemy hit", "tick", s.tick, "score", s.score)
	}

	s.swarm.Compact()
	if s.swarm.Escaped() {
		s.end(EndEscaped)
	}

	if s.swarm.Len() == 0 {
		s.spawnWave()
	}

	return s.result(gained)
}

// apply translates commands into entity calls.
func (s *Session) apply(cmds []core.Command) {
	step := s.cfg.Ship.Step
	for _, c := range cmds {
		switch c {
		case core.CommandMoveLeftPressed:
			s.ship.BeginMove(-step)
		case core.CommandMoveLeftReleased:
			s.ship.EndMove(-step)
		case core.CommandMoveRightPressed:
			s.ship.BeginMove(step)
		case core.CommandMoveRightReleased:
			s.ship.EndMove(step)
		case core.CommandFirePressed:
			s.shot.Launch(s.ship.X, s.ship.Y)
		}
	}
}

func (s *Session) spawnWave() {
	s.swarm.Spawn()
	cx, cy := s.swarm.Cursor()
	s.logger.Debug("wave spawned", "wave", s.swarm.Wave(), "tick", s.tick, "cursor_x", cx, "cursor_y", cy)
}

func (s *Session) end(reason EndReason) {
	s.phase = PhaseEnded
	s.reason = reason
	s.logger.Info("game over", "reason", reason, "score", s.score, "tick", s.tick, "wave", s.swarm.Wave())
}

func (s *Session) result(gained int) StepResult {
	return StepResult{
		Phase:  s.phase,
		Reason: s.reason,
		Score:  s.score,
		Gained: gained,
		Tick:   s.tick,
	}
}

// Quit ends a running session as if QuitRequested had been received.
func (s *Session) Quit() {
	if s.phase == PhaseRunning {
		s.end(EndQuit)
	}
}

// Frame returns the render request for the current state.
func (s *Session) Frame() Frame {
	enemies := s.swarm.Enemies()
	views := make([]EnemyView, len(enemies))
	for i, e := range enemies {
		views[i] = EnemyView{ID: e.ID, X: e.X, Y: e.Y}
	}

	return Frame{
		Tick: s.tick,
		Ship: ShipView{X: s.ship.X, Y: s.ship.Y},
		Projectile: ProjectileView{
			X:       s.shot.X,
			Y:       s.shot.Y,
			Visible: s.shot.Active(),
		},
		Enemies: views,
		Score:   s.score,
	}
}

// Score returns the session score.
func (s *Session) Score() int { return s.score }

// Phase returns the loop state.
func (s *Session) Phase() Phase { return s.phase }

// Reason returns why the session ended, or EndNone while running.
func (s *Session) Reason() EndReason { return s.reason }

// Tick returns the number of simulated ticks.
func (s *Session) Tick() uint64 { return s.tick }

// Ship returns the player's ship.
func (s *Session) Ship() *Ship { return s.ship }

// Projectile returns the shot.
func (s *Session) Projectile() *Projectile { return s.shot }

// Swarm returns the enemy swarm.
func (s *Session) Swarm() *Swarm { return s.swarm }
