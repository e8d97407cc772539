// Package config provides YAML-based configuration loading and validation
// for the invaders game.
package config

// InvadersConfig contains every tunable constant of a session.
// All distances are in surface pixels, all speeds in pixels per tick.
type InvadersConfig struct {
	Surface   SurfaceConfig   `yaml:"surface"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Formation FormationConfig `yaml:"formation"`
	Messages  MessagesConfig  `yaml:"messages"`
	Controls  ControlsConfig  `yaml:"controls"`
}

// SurfaceConfig defines the logical draw surface the simulation runs on.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Speed        int    `yaml:"speed"`         // Horizontal step per tick while a direction is held
	BottomOffset int    `yaml:"bottom_offset"` // Distance from the surface bottom to the ship's top edge
	Color        string `yaml:"color"`
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Speed  int    `yaml:"speed"` // Upward step per tick (applied as negative dy)
	Color  string `yaml:"color"`
}

// EnemyConfig defines a single enemy and the formation's motion.
type EnemyConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Speed   int    `yaml:"speed"`   // Initial formation dx
	Descend int    `yaml:"descend"` // Drop applied to every enemy on a bounce
	Color   string `yaml:"color"`
}

// FormationConfig defines the initial enemy grid.
type FormationConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	GapX    int `yaml:"gap_x"`
	GapY    int `yaml:"gap_y"`
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

// MessagesConfig holds the player-visible terminal-state texts.
type MessagesConfig struct {
	GameOver   string `yaml:"game_over"`
	StageClear string `yaml:"stage_clear"`
	Font       string `yaml:"font"`
}

// ControlsConfig tunes how terminal key events become held directions.
type ControlsConfig struct {
	// HoldTicks is how many ticks a direction stays held after its last
	// key event. Terminals report presses and auto-repeats, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}
