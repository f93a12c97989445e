// Package config provides YAML-based configuration loading for Galaxy Raid.
// Every tunable of the simulation lives here so the game package has no
// hard-coded magic numbers.
package config

// GalaxyConfig contains all configuration for the game.
type GalaxyConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Field      FieldConfig      `yaml:"field"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Swarm      SwarmConfig      `yaml:"swarm"`
	Sprites    SpriteConfig     `yaml:"sprites"`
	Input      InputConfig      `yaml:"input"`
}

// FieldConfig defines the play field in world units (pixels).
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"` // Enemies at or below this y have escaped
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	StartX int `yaml:"start_x"`
	Y      int `yaml:"y"`
	Step   int `yaml:"step"`  // Units moved per tick while a direction is held
	MaxX   int `yaml:"max_x"` // Right clamp; field width minus sprite margin
}

// ProjectileConfig defines the single reusable shot.
type ProjectileConfig struct {
	Speed float64 `yaml:"speed"` // Units per tick, upward
}

// EnemyConfig defines the serpentine path of a swarm member.
type EnemyConfig struct {
	StepsBeforeDrop int `yaml:"steps_before_drop"`
	JogEvery        int `yaml:"jog_every"` // Lateral jog when counter % jog_every == 0
	JogX            int `yaml:"jog_x"`
	DropY           int `yaml:"drop_y"`
	RewindX         int `yaml:"rewind_x"` // Leftward shift applied on a row drop
}

// Cursor policies for wave spawning.
const (
	CursorCarry = "carry" // Spawn cursor continues where the last wave stopped
	CursorReset = "reset" // Every wave starts at the origin
)

// SwarmConfig defines wave layout.
type SwarmConfig struct {
	Size         int    `yaml:"size"`
	OriginX      int    `yaml:"origin_x"`
	OriginY      int    `yaml:"origin_y"`
	Spacing      int    `yaml:"spacing"`
	PerRow       int    `yaml:"per_row"`
	CursorPolicy string `yaml:"cursor_policy"`
}

// SpriteConfig defines sprite sizes; collision masks are derived from them.
type SpriteConfig struct {
	ShipSize       int `yaml:"ship_size"`
	ShotSize       int `yaml:"shot_size"`
	EnemySize      int `yaml:"enemy_size"`
	AlphaThreshold int `yaml:"alpha_threshold"` // Pixels with alpha above this are solid
}

// Move policies for the ship's active-move container.
const (
	MoveStack = "stack" // Ordered multiset: duplicates kept, one removed per release
	MoveHeld  = "held"  // Set of held directions: duplicates collapse
)

// InputConfig defines input handling.
type InputConfig struct {
	MovePolicy string `yaml:"move_policy"`
	// HoldTicks is how many ticks a terminal key stays held without a repeat
	// before the terminal adapter synthesises a release.
	HoldTicks int `yaml:"hold_ticks"`
}
