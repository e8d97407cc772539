package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// blockRune is drawn for every cell covered by a filled rectangle.
const blockRune = '█'

// Canvas is a pixel surface backed by a terminal cell buffer.
// Each cell covers cellW x cellH surface pixels; a rectangle marks every
// cell it touches, so even a 3px bullet stays visible.
type Canvas struct {
	screen *core.Screen

	pxW, pxH     int // Logical surface size in pixels
	cellW, cellH int // Pixels per terminal cell

	restart bool
}

// NewCanvas creates a canvas for a pxW x pxH surface shown in a terminal
// area of cols x rows cells.
func NewCanvas(pxW, pxH, cols, rows int) *Canvas {
	c := &Canvas{
		pxW: core.Max(pxW, 1),
		pxH: core.Max(pxH, 1),
	}
	c.screen = core.NewScreen(0, 0)
	c.Resize(cols, rows)
	return c
}

// Resize fits the surface into a new terminal area. The cell buffer shrinks
// to the cells the surface actually covers.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = core.Max(cols, 1), core.Max(rows, 1)
	c.cellW = core.Max(core.CeilDiv(c.pxW, cols), 1)
	c.cellH = core.Max(core.CeilDiv(c.pxH, rows), 1)
	c.screen.Resize(core.CeilDiv(c.pxW, c.cellW), core.CeilDiv(c.pxH, c.cellH))
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int {
	return c.pxW
}

// Height returns the surface height in pixels.
func (c *Canvas) Height() int {
	return c.pxH
}

// CellSize returns how many surface pixels one terminal cell covers.
func (c *Canvas) CellSize() (w, h int) {
	return c.cellW, c.cellH
}

// Screen returns the backing cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Clear blanks the canvas and hides the restart prompt.
func (c *Canvas) Clear() {
	c.screen.Clear()
	c.restart = false
}

// FillRect fills every cell the pixel rectangle touches.
func (c *Canvas) FillRect(x, y, w, h int, col core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := core.FloorDiv(x, c.cellW)
	y0 := core.FloorDiv(y, c.cellH)
	x1 := core.Max(core.CeilDiv(x+w, c.cellW), x0+1)
	y1 := core.Max(core.CeilDiv(y+h, c.cellH), y0+1)

	c.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), blockRune, col)
}

// FillText writes text on the cell row containing y, anchored at x as the
// style's alignment requires. Fonts do not apply to a terminal.
func (c *Canvas) FillText(text string, x, y int, style invaders.TextStyle) {
	col := core.FloorDiv(x, c.cellW)
	row := core.FloorDiv(y, c.cellH)
	width := lipgloss.Width(text)

	switch style.Align {
	case invaders.AlignCenter:
		col -= width / 2
	case invaders.AlignRight:
		col -= width
	}
	c.screen.DrawText(col, row, text, style.Color)
}

// ShowRestart marks the current frame as offering a restart.
func (c *Canvas) ShowRestart() {
	c.restart = true
}

// RestartShown reports whether the last rendered frame offered a restart.
func (c *Canvas) RestartShown() bool {
	return c.restart
}
