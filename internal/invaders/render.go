package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Align is the horizontal anchoring of text drawn with FillText.
type Align int

const (
	AlignLeft   Align = iota // x is the left edge of the text
	AlignCenter              // x is the center of the text
	AlignRight               // x is the right edge of the text
)

// TextStyle describes how FillText renders a string.
type TextStyle struct {
	Font  string // Font hint; surfaces without fonts ignore it
	Align Align
	Color core.Color
}

// Surface is the pixel-addressed drawing target a session renders onto.
// Coordinates share the simulation's space: origin top-left, y down.
type Surface interface {
	Width() int
	Height() int
	Clear()
	FillRect(x, y, w, h int, c core.Color)
	FillText(text string, x, y int, style TextStyle)
}

// RestartControl is implemented by surfaces that can offer the player a way
// to start a new session. Render calls ShowRestart once the session ends.
type RestartControl interface {
	ShowRestart()
}

// Render draws the current session onto dst. It never modifies the session.
func (s *Session) Render(dst Surface) {
	switch s.state {
	case StateCleared:
		s.renderCleared(dst)
	case StateDefeated:
		s.renderScene(dst)
		s.renderDefeated(dst)
	default:
		s.renderScene(dst)
	}

	if s.state.Terminal() {
		if rc, ok := dst.(RestartControl); ok {
			rc.ShowRestart()
		}
	}
}

// renderScene clears the surface and draws the ship, bullets and enemies.
func (s *Session) renderScene(dst Surface) {
	dst.Clear()

	p := s.player
	dst.FillRect(p.X, p.Y, p.W, p.H, p.Color)

	for _, b := range s.bullets {
		dst.FillRect(b.X, b.Y, b.W, b.H, b.Color)
	}

	for _, e := range s.formation.Enemies {
		dst.FillRect(e.X, e.Y, e.W, e.H, e.Color)
	}
}

// renderCleared replaces the scene with the stage-clear screen.
func (s *Session) renderCleared(dst Surface) {
	dst.FillRect(0, 0, dst.Width(), dst.Height(), core.ColorBlack)
	dst.FillText(s.cfg.Messages.StageClear, dst.Width()/2, dst.Height()/2, TextStyle{
		Font:  s.cfg.Messages.Font,
		Align: AlignCenter,
		Color: core.ColorWhite,
	})
}

// renderDefeated overlays the game-over message on the final scene.
func (s *Session) renderDefeated(dst Surface) {
	dst.FillText(s.cfg.Messages.GameOver, dst.Width()/2, dst.Height()/2, TextStyle{
		Font:  s.cfg.Messages.Font,
		Align: AlignCenter,
		Color: core.ColorWhite,
	})
}
