package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

func TestNewCanvasScaling(t *testing.T) {
	tests := []struct {
		name         string
		cols, rows   int
		cellW, cellH int
		screenW      int
		screenH      int
	}{
		{"80x22 terminal", 80, 22, 6, 15, 80, 22},
		{"160x40 terminal", 160, 40, 3, 8, 160, 40},
		{"larger than surface", 1000, 1000, 1, 1, 480, 320},
		{"tiny terminal", 10, 5, 48, 64, 10, 5},
		{"zero size", 0, 0, 480, 320, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(480, 320, tc.cols, tc.rows)
			w, h := c.CellSize()
			if w != tc.cellW || h != tc.cellH {
				t.Errorf("CellSize() = %dx%d, expected %dx%d", w, h, tc.cellW, tc.cellH)
			}
			if c.Screen().Width() != tc.screenW || c.Screen().Height() != tc.screenH {
				t.Errorf("screen = %dx%d, expected %dx%d",
					c.Screen().Width(), c.Screen().Height(), tc.screenW, tc.screenH)
			}
			if c.Width() != 480 || c.Height() != 320 {
				t.Errorf("surface = %dx%d, expected 480x320", c.Width(), c.Height())
			}
		})
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(480, 320, 80, 22) // 6x15 pixels per cell

	// Bullet at (239, 290) 3x10 covers cells x 39..40, y 19
	c.FillRect(239, 290, 3, 10, core.ColorWhite)

	for _, x := range []int{39, 40} {
		cell := c.Screen().GetCell(x, 19)
		if cell.Rune != blockRune || cell.Color != core.ColorWhite {
			t.Errorf("cell (%d, 19) = %+v, expected white block", x, cell)
		}
	}
	for _, pos := range [][2]int{{38, 19}, {41, 19}, {39, 18}, {39, 20}} {
		if r := c.Screen().GetCell(pos[0], pos[1]).Rune; r != ' ' {
			t.Errorf("cell %v = %q, expected blank", pos, r)
		}
	}
}

func TestCanvasFillRectAtLeastOneCell(t *testing.T) {
	c := NewCanvas(480, 320, 80, 22)

	c.FillRect(1, 1, 1, 1, core.ColorRed)
	if cell := c.Screen().GetCell(0, 0); cell.Rune != blockRune || cell.Color != core.ColorRed {
		t.Errorf("a 1px rect should still mark its cell, got %+v", cell)
	}

	c.Clear()
	c.FillRect(10, 10, 0, 5, core.ColorRed)
	c.FillRect(10, 10, 5, -1, core.ColorRed)
	if got := c.Screen().String(); got != core.NewScreen(80, 22).String() {
		t.Error("empty rects should draw nothing")
	}
}

func TestCanvasFillRectClipsOffSurface(t *testing.T) {
	c := NewCanvas(480, 320, 80, 22)

	// An enemy past the left edge after a bounce step
	c.FillRect(-4, 0, 20, 20, core.ColorRed)

	for x := 0; x <= 2; x++ {
		if c.Screen().GetCell(x, 0).Rune != blockRune {
			t.Errorf("cell (%d, 0) should be filled", x)
		}
	}
	if c.Screen().GetCell(3, 0).Rune != ' ' {
		t.Error("cell (3, 0) should be blank")
	}
}

func TestCanvasFillTextAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align invaders.Align
		start int
	}{
		{"center", invaders.AlignCenter, 36},
		{"left", invaders.AlignLeft, 40},
		{"right", invaders.AlignRight, 31},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(480, 320, 80, 22)
			c.FillText("Game Over", 240, 160, invaders.TextStyle{Align: tc.align, Color: core.ColorWhite})

			row := []rune(strings.Split(c.Screen().String(), "\n")[10])
			if got := string(row[tc.start : tc.start+9]); got != "Game Over" {
				t.Errorf("row 10 at %d = %q, expected \"Game Over\"", tc.start, got)
			}
			if cell := c.Screen().GetCell(tc.start, 10); cell.Color != core.ColorWhite {
				t.Errorf("text color = %v, expected white", cell.Color)
			}
		})
	}
}

func TestCanvasRestartControl(t *testing.T) {
	c := NewCanvas(480, 320, 80, 22)
	if c.RestartShown() {
		t.Error("new canvas should not show restart")
	}

	c.ShowRestart()
	if !c.RestartShown() {
		t.Error("RestartShown() = false after ShowRestart()")
	}

	c.Clear()
	if c.RestartShown() {
		t.Error("Clear() should hide the restart prompt")
	}
}

func TestCanvasRendersSession(t *testing.T) {
	s := invaders.NewSession(config.DefaultInvadersConfig())
	c := NewCanvas(480, 320, 80, 22)

	s.Render(c)

	// Ship at (225, 290) 30x10 covers cells x 37..42, y 19
	for x := 37; x <= 42; x++ {
		if cell := c.Screen().GetCell(x, 19); cell.Color != core.ColorGreen {
			t.Errorf("ship cell (%d, 19) color = %v, expected green", x, cell.Color)
		}
	}
	// First enemy at (60, 30) 20x20 covers cells x 10..13, y 2..3
	if cell := c.Screen().GetCell(10, 2); cell.Color != core.ColorRed {
		t.Errorf("enemy cell color = %v, expected red", cell.Color)
	}
	if c.RestartShown() {
		t.Error("restart should not be offered while playing")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetCell(0, 0, core.Cell{Rune: 'a', Color: core.ColorRed})
	s.SetCell(1, 0, core.Cell{Rune: 'b', Color: core.ColorRed})
	s.SetCell(3, 1, core.Cell{Rune: 'c'})

	out := RenderScreen(s)

	for _, want := range []string{"ab", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, expected it to contain %q", out, want)
		}
	}
}
