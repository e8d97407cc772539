package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It matches defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Surface: SurfaceConfig{
			Width:  480,
			Height: 320,
		},
		Player: PlayerConfig{
			Width:        30,
			Height:       10,
			Speed:        5,
			BottomOffset: 30,
			Color:        "green",
		},
		Bullet: BulletConfig{
			Width:  3,
			Height: 10,
			Speed:  7,
			Color:  "white",
		},
		Enemy: EnemyConfig{
			Width:   20,
			Height:  20,
			Speed:   2,
			Descend: 20,
			Color:   "red",
		},
		Formation: FormationConfig{
			Columns: 5,
			Rows:    3,
			GapX:    20,
			GapY:    20,
			OffsetX: 60,
			OffsetY: 30,
		},
		Messages: MessagesConfig{
			GameOver:   "Game Over",
			StageClear: "Stage Clear",
			Font:       "48px serif",
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
