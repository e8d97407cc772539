package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// minFormationSpeed replaces a zero formation speed; a formation that never
// moves would never reach an edge and never bounce.
const minFormationSpeed = 1

// CreateEnemies builds the initial enemy grid in column-major order:
// every row of the first column, then every row of the second, and so on.
// The result depends only on the configuration.
func CreateEnemies(cfg config.InvadersConfig) []Enemy {
	e := cfg.Enemy
	f := cfg.Formation
	color := parseColorOr(e.Color, core.ColorRed)

	enemies := make([]Enemy, 0, core.Max(f.Columns, 0)*core.Max(f.Rows, 0))
	for c := 0; c < f.Columns; c++ {
		for r := 0; r < f.Rows; r++ {
			enemies = append(enemies, Enemy{
				Rect: core.NewRect(
					c*(e.Width+f.GapX)+f.OffsetX,
					r*(e.Height+f.GapY)+f.OffsetY,
					e.Width,
					e.Height,
				),
				Color: color,
			})
		}
	}
	return enemies
}

// NewFormation creates the starting formation moving with the configured speed.
func NewFormation(cfg config.InvadersConfig) Formation {
	dx := cfg.Enemy.Speed
	if dx == 0 {
		dx = minFormationSpeed
	}
	return Formation{
		Enemies: CreateEnemies(cfg),
		DX:      dx,
		Descend: cfg.Enemy.Descend,
	}
}

// parseColorOr resolves a configured color name, falling back when unknown.
func parseColorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}
