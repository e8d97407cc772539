package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the session's position in its lifecycle.
type State string

// Session states. Defeated and Cleared are terminal.
const (
	StatePlaying  State = "playing"
	StateDefeated State = "defeated" // An enemy reached the player's row
	StateCleared  State = "cleared"  // Every enemy was destroyed
)

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateDefeated || s == StateCleared
}

// Session is one game from the first tick to a terminal state.
// A session is never reset; restarting means creating a new one.
type Session struct {
	cfg config.InvadersConfig

	width  int
	height int

	player    Player
	bullets   []Bullet
	formation Formation
	input     InputState

	bullet Bullet // Template for new bullets

	state State
	tick  uint64
}

// NewSession creates a session in its initial state: the ship centred near
// the bottom edge, a fresh formation and no bullets.
func NewSession(cfg config.InvadersConfig) *Session {
	s := &Session{
		cfg:    cfg,
		width:  cfg.Surface.Width,
		height: cfg.Surface.Height,
		state:  StatePlaying,
	}

	s.player = Player{
		Rect: core.NewRect(
			cfg.Surface.Width/2-cfg.Player.Width/2,
			cfg.PlayerY(),
			cfg.Player.Width,
			cfg.Player.Height,
		),
		Speed: cfg.Player.Speed,
		Color: parseColorOr(cfg.Player.Color, core.ColorGreen),
	}

	s.bullet = Bullet{
		Rect:  core.NewRect(0, 0, cfg.Bullet.Width, cfg.Bullet.Height),
		DY:    -core.Abs(cfg.Bullet.Speed),
		Color: parseColorOr(cfg.Bullet.Color, core.ColorWhite),
	}

	s.formation = NewFormation(cfg)
	s.bullets = make([]Bullet, 0, 16)

	return s
}

// Fire launches one bullet from the ship's current horizontal center.
// It does nothing once the session has ended and reports whether a bullet
// was created.
func (s *Session) Fire() bool {
	if s.state.Terminal() {
		return false
	}
	b := s.bullet
	b.X = s.player.CenterX() - b.W/2
	b.Y = s.player.Y
	s.bullets = append(s.bullets, b)
	return true
}

// Update advances the simulation by one tick and returns the resulting state.
// The steps run in a fixed order: player, bullets, formation, collisions,
// then the loss and win checks. A terminal session is left untouched.
func (s *Session) Update() State {
	if s.state.Terminal() {
		return s.state
	}

	s.tick++

	s.movePlayer()
	s.advanceBullets()
	s.advanceFormation()
	s.resolveCollisions()

	if s.reachedPlayer() {
		s.state = StateDefeated
		return s.state
	}
	if s.formation.Cleared() {
		s.state = StateCleared
	}
	return s.state
}

// movePlayer applies at most one direction per tick, right first.
// A step that would cross an edge is skipped, not shortened, so the ship
// may stop up to one step short of the edge.
func (s *Session) movePlayer() {
	p := &s.player
	switch {
	case s.input.MoveRight && p.Right()+p.Speed <= s.width:
		p.X += p.Speed
	case s.input.MoveLeft && p.X-p.Speed >= 0:
		p.X -= p.Speed
	}
}

// advanceBullets moves every bullet and keeps only those still on screen.
func (s *Session) advanceBullets() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Rect = b.Translate(0, b.DY)
		if b.Y < 0 {
			continue
		}
		kept = append(kept, b)
	}
	s.bullets = kept
}

// advanceFormation moves the formation and bounces it as a whole when any
// member crosses a side edge.
func (s *Session) advanceFormation() {
	if s.formation.advance(s.width) {
		s.formation.bounce()
	}
}

// resolveCollisions removes every bullet that hits an enemy together with
// the first enemy (in formation order) it overlaps. A bullet destroys at
// most one enemy per tick.
func (s *Session) resolveCollisions() {
	if len(s.bullets) == 0 || len(s.formation.Enemies) == 0 {
		return
	}

	destroyed := make([]bool, len(s.formation.Enemies))
	keptBullets := s.bullets[:0]

	for _, b := range s.bullets {
		hit := false
		for i, e := range s.formation.Enemies {
			if destroyed[i] {
				continue
			}
			if b.Intersects(e.Rect) {
				destroyed[i] = true
				hit = true
				break
			}
		}
		if !hit {
			keptBullets = append(keptBullets, b)
		}
	}
	s.bullets = keptBullets

	keptEnemies := s.formation.Enemies[:0]
	for i, e := range s.formation.Enemies {
		if !destroyed[i] {
			keptEnemies = append(keptEnemies, e)
		}
	}
	s.formation.Enemies = keptEnemies
}

// reachedPlayer reports whether any enemy's bottom edge is below the top of
// the ship.
func (s *Session) reachedPlayer() bool {
	return !s.formation.Cleared() && s.formation.Bounds().Bottom() > s.player.Y
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Tick returns the number of ticks simulated so far.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Input returns the session's input state for the input source to update.
func (s *Session) Input() *InputState {
	return &s.input
}

// Player returns a copy of the ship.
func (s *Session) Player() Player {
	return s.player
}

// Bullets returns a copy of the bullets in flight, in firing order.
func (s *Session) Bullets() []Bullet {
	out := make([]Bullet, len(s.bullets))
	copy(out, s.bullets)
	return out
}

// Enemies returns a copy of the live enemies, in formation order.
func (s *Session) Enemies() []Enemy {
	out := make([]Enemy, len(s.formation.Enemies))
	copy(out, s.formation.Enemies)
	return out
}

// Formation returns a copy of the formation.
func (s *Session) Formation() Formation {
	f := s.formation
	f.Enemies = s.Enemies()
	return f
}

// Width returns the surface width the session simulates.
func (s *Session) Width() int {
	return s.width
}

// Height returns the surface height the session simulates.
func (s *Session) Height() int {
	return s.height
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.InvadersConfig {
	return s.cfg
}
