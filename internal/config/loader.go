package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "invaders.yaml"

// LoadInvaders loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files are overlaid on the defaults, so a file may set only the keys it changes.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg InvadersConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// PlayerY returns the top edge of the player ship.
func (c InvadersConfig) PlayerY() int {
	return c.Surface.Height - c.Player.BottomOffset
}

// FormationWidth returns the initial horizontal extent of the enemy grid.
func (c InvadersConfig) FormationWidth() int {
	f := c.Formation
	if f.Columns <= 0 {
		return 0
	}
	return f.Columns*c.Enemy.Width + (f.Columns-1)*f.GapX
}

// FormationHeight returns the initial vertical extent of the enemy grid.
func (c InvadersConfig) FormationHeight() int {
	f := c.Formation
	if f.Rows <= 0 {
		return 0
	}
	return f.Rows*c.Enemy.Height + (f.Rows-1)*f.GapY
}

// Validate reports every problem that would make a session unplayable.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("config: %s must not be negative, got %d", name, v))
		}
	}
	color := func(name, v string) {
		if _, ok := core.ParseColor(v); !ok {
			errs = append(errs, fmt.Errorf("config: %s: unknown color %q", name, v))
		}
	}

	positive("surface.width", c.Surface.Width)
	positive("surface.height", c.Surface.Height)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.bottom_offset", c.Player.BottomOffset)
	color("player.color", c.Player.Color)

	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.speed", c.Bullet.Speed)
	color("bullet.color", c.Bullet.Color)

	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.descend", c.Enemy.Descend)
	color("enemy.color", c.Enemy.Color)

	positive("formation.columns", c.Formation.Columns)
	positive("formation.rows", c.Formation.Rows)
	nonNegative("formation.gap_x", c.Formation.GapX)
	nonNegative("formation.gap_y", c.Formation.GapY)
	nonNegative("formation.offset_x", c.Formation.OffsetX)
	nonNegative("formation.offset_y", c.Formation.OffsetY)

	positive("controls.hold_ticks", c.Controls.HoldTicks)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	// Layout checks only make sense once every dimension is sane.
	if c.Player.Width > c.Surface.Width {
		errs = append(errs, fmt.Errorf("config: player (%d wide) does not fit the surface (%d wide)",
			c.Player.Width, c.Surface.Width))
	}
	if c.Player.BottomOffset > c.Surface.Height {
		errs = append(errs, fmt.Errorf("config: player.bottom_offset %d exceeds surface height %d",
			c.Player.BottomOffset, c.Surface.Height))
	}
	if right := c.Formation.OffsetX + c.FormationWidth(); right > c.Surface.Width {
		errs = append(errs, fmt.Errorf("config: formation right edge %d exceeds surface width %d",
			right, c.Surface.Width))
	}
	if bottom := c.Formation.OffsetY + c.FormationHeight(); bottom > c.PlayerY() {
		errs = append(errs, fmt.Errorf("config: formation bottom %d already reaches the player at y=%d",
			bottom, c.PlayerY()))
	}

	return errors.Join(errs...)
}
