package game

// Snapshot contains the session state for replay and debugging.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Score  int
	Phase  string
	Reason string
	Wave   int

	ShipX, ShipY int
	ShipMoves    []int

	ShotX      int
	ShotY      float64
	ShotActive bool

	CursorX, CursorY int

	// Enemy states (each enemy is 5 ints: ID, X, Y, Counter, State)
	EnemyCount int
	EnemyData  []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	enemies := s.swarm.Enemies()
	enemyData := make([]int, len(enemies)*5)
	for i, e := range enemies {
		idx := i * 5
		enemyData[idx] = int(e.ID) //#nosec G115 -- ids stay small
		enemyData[idx+1] = e.X
		enemyData[idx+2] = e.Y
		enemyData[idx+3] = e.Counter
		enemyData[idx+4] = int(e.State)
	}

	cx, cy := s.swarm.Cursor()
	return Snapshot{
		Tick:   s.tick,
		Score:  s.score,
		Phase:  s.phase.String(),
		Reason: s.reason.String(),
		Wave:   s.swarm.Wave(),

		ShipX:     s.ship.X,
		ShipY:     s.ship.Y,
		ShipMoves: s.ship.Moves(),

		ShotX:      s.shot.X,
		ShotY:      s.shot.Y,
		ShotActive: s.shot.Active(),

		CursorX: cx,
		CursorY: cy,

		EnemyCount: len(enemies),
		EnemyData:  enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipX)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotX)            //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.ShotY*100)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	if snap.ShotActive {
		h = h*31 + 1
	}

	for _, v := range snap.ShipMoves {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
