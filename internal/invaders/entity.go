// Package invaders implements the shooter simulation: a player ship that moves
// along the bottom of the surface, bullets fired upward, and a bouncing,
// descending enemy formation. It is pure logic; drawing, input wiring and
// frame scheduling are supplied by the caller.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Player is the ship controlled by the input state.
type Player struct {
	core.Rect
	Speed int // Horizontal step per tick
	Color core.Color
}

// CenterX returns the horizontal center of the ship.
func (p Player) CenterX() int {
	return p.X + p.W/2
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	core.Rect
	DY    int // Vertical step per tick, negative
	Color core.Color
}

// Enemy is one member of the formation. Its horizontal velocity lives on
// the Formation so that every member always moves in lockstep.
type Enemy struct {
	core.Rect
	Color core.Color
}

// Formation is the set of live enemies plus the single horizontal velocity
// they share.
type Formation struct {
	Enemies []Enemy
	DX      int // Current horizontal step per tick; its sign is the direction
	Descend int // Vertical drop applied to every member on a bounce
}

// Cleared reports whether every enemy has been destroyed.
func (f *Formation) Cleared() bool {
	return len(f.Enemies) == 0
}

// Bounds returns the bounding box of all live enemies, or an empty rect
// once the formation is cleared.
func (f *Formation) Bounds() core.Rect {
	var b core.Rect
	for _, e := range f.Enemies {
		b = b.Union(e.Rect)
	}
	return b
}

// advance moves every enemy by DX and reports whether any member now
// crosses the left or right edge of a surface of the given width.
func (f *Formation) advance(width int) (touched bool) {
	for i := range f.Enemies {
		e := &f.Enemies[i]
		e.Rect = e.Translate(f.DX, 0)
		if e.X < 0 || e.Right() > width {
			touched = true
		}
	}
	return touched
}

// bounce reverses the shared direction and drops every member.
func (f *Formation) bounce() {
	f.DX = -f.DX
	for i := range f.Enemies {
		f.Enemies[i].Rect = f.Enemies[i].Translate(0, f.Descend)
	}
}
