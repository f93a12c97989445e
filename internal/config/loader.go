package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.galaxy/config.yaml -> ./configs/galaxy.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (GalaxyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GalaxyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GalaxyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "galaxy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGalaxyYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (GalaxyConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GalaxyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GalaxyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GalaxyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports every out-of-range field at once.
func (c GalaxyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)
	check(c.Field.Width > 0 && c.Field.Height > 0, "field must have a positive size, got %dx%d", c.Field.Width, c.Field.Height)
	check(c.Ship.Step > 0, "ship.step must be positive, got %d", c.Ship.Step)
	check(c.Ship.MaxX >= 0 && c.Ship.MaxX <= c.Field.Width, "ship.max_x must be within [0, %d], got %d", c.Field.Width, c.Ship.MaxX)
	check(c.Ship.StartX >= 0 && c.Ship.StartX <= c.Ship.MaxX, "ship.start_x must be within [0, %d], got %d", c.Ship.MaxX, c.Ship.StartX)
	check(c.Projectile.Speed > 0, "projectile.speed must be positive, got %g", c.Projectile.Speed)
	check(c.Enemy.StepsBeforeDrop > 0, "enemy.steps_before_drop must be positive, got %d", c.Enemy.StepsBeforeDrop)
	check(c.Enemy.JogEvery > 0, "enemy.jog_every must be positive, got %d", c.Enemy.JogEvery)
	check(c.Swarm.Size > 0, "swarm.size must be positive, got %d", c.Swarm.Size)
	check(c.Swarm.PerRow > 0, "swarm.per_row must be positive, got %d", c.Swarm.PerRow)
	check(c.Swarm.Spacing > 0, "swarm.spacing must be positive, got %d", c.Swarm.Spacing)
	check(c.Swarm.CursorPolicy == CursorCarry || c.Swarm.CursorPolicy == CursorReset,
		"swarm.cursor_policy must be %q or %q, got %q", CursorCarry, CursorReset, c.Swarm.CursorPolicy)
	check(c.Sprites.ShipSize > 0 && c.Sprites.ShotSize > 0 && c.Sprites.EnemySize > 0, "sprite sizes must be positive")
	check(c.Sprites.AlphaThreshold >= 0 && c.Sprites.AlphaThreshold < 255, "sprites.alpha_threshold must be within [0, 254], got %d", c.Sprites.AlphaThreshold)
	check(c.Input.MovePolicy == MoveStack || c.Input.MovePolicy == MoveHeld,
		"input.move_policy must be %q or %q, got %q", MoveStack, MoveHeld, c.Input.MovePolicy)
	check(c.Input.HoldTicks > 0, "input.hold_ticks must be positive, got %d", c.Input.HoldTicks)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".galaxy", filename)
}
