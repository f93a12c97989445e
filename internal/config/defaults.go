package config

import (
	_ "embed"
)

//go:embed defaults/galaxy.yaml
var defaultGalaxyYAML []byte

// Default returns the built-in configuration.
func Default() GalaxyConfig {
	return GalaxyConfig{
		TickRate: 30,
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			StartX: 400,
			Y:      480,
			Step:   5,
			MaxX:   750,
		},
		Projectile: ProjectileConfig{
			Speed: 5,
		},
		Enemy: EnemyConfig{
			StepsBeforeDrop: 110,
			JogEvery:        30,
			JogX:            50,
			DropY:           50,
			RewindX:         150,
		},
		Swarm: SwarmConfig{
			Size:         10,
			OriginX:      275,
			OriginY:      50,
			Spacing:      50,
			PerRow:       6,
			CursorPolicy: CursorCarry,
		},
		Sprites: SpriteConfig{
			ShipSize:       64,
			ShotSize:       32,
			EnemySize:      32,
			AlphaThreshold: 127,
		},
		Input: InputConfig{
			MovePolicy: MoveStack,
			HoldTicks:  12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGalaxyYAML
}
