package invaders

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestCreateEnemiesLayout(t *testing.T) {
	enemies := CreateEnemies(config.DefaultInvadersConfig())

	if len(enemies) != 15 {
		t.Fatalf("CreateEnemies() returned %d enemies, expected 15", len(enemies))
	}

	// Column-major: all rows of a column before the next column
	tests := []struct {
		index int
		x, y  int
	}{
		{0, 60, 30},
		{1, 60, 70},
		{2, 60, 110},
		{3, 100, 30},
		{7, 140, 70},
		{14, 220, 110},
	}
	for _, tc := range tests {
		e := enemies[tc.index]
		if e.X != tc.x || e.Y != tc.y {
			t.Errorf("enemy[%d] at (%d, %d), expected (%d, %d)", tc.index, e.X, e.Y, tc.x, tc.y)
		}
	}

	for i, e := range enemies {
		if e.W != 20 || e.H != 20 {
			t.Errorf("enemy[%d] size %dx%d, expected 20x20", i, e.W, e.H)
		}
		if e.Color != core.ColorRed {
			t.Errorf("enemy[%d] color %v, expected red", i, e.Color)
		}
	}
}

func TestCreateEnemiesHorizontalRange(t *testing.T) {
	enemies := CreateEnemies(config.DefaultInvadersConfig())

	minX := 60
	maxRight := 60 + 4*(20+20) + 20
	for i, e := range enemies {
		if e.X < minX || e.Right() > maxRight {
			t.Errorf("enemy[%d] spans [%d, %d], expected within [%d, %d]", i, e.X, e.Right(), minX, maxRight)
		}
	}
}

func TestCreateEnemiesDeterministic(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	a := CreateEnemies(cfg)
	b := CreateEnemies(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Error("CreateEnemies() should produce the same grid on every call")
	}
}

func TestNewFormation(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg)

	if f.DX != 2 {
		t.Errorf("DX = %d, expected 2", f.DX)
	}
	if f.Descend != 20 {
		t.Errorf("Descend = %d, expected 20", f.Descend)
	}
	if len(f.Enemies) != 15 || f.Cleared() {
		t.Errorf("%d enemies, Cleared() = %v, expected 15 and false", len(f.Enemies), f.Cleared())
	}

	b := f.Bounds()
	if b != core.NewRect(60, 30, 180, 100) {
		t.Errorf("Bounds() = %+v, expected {60 30 180 100}", b)
	}
}

func TestNewFormationZeroSpeed(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemy.Speed = 0

	f := NewFormation(cfg)
	if f.DX == 0 {
		t.Error("a zero configured speed should not produce a motionless formation")
	}
}

func TestFormationAdvanceAndBounce(t *testing.T) {
	f := Formation{
		Enemies: []Enemy{
			{Rect: core.NewRect(0, 10, 20, 20)},
			{Rect: core.NewRect(458, 10, 20, 20)},
		},
		DX:      4,
		Descend: 20,
	}

	if !f.advance(480) {
		t.Fatal("advance() should report the right-hand enemy crossing the edge")
	}
	f.bounce()

	if f.DX != -4 {
		t.Errorf("DX after bounce = %d, expected -4", f.DX)
	}
	for i, e := range f.Enemies {
		if e.Y != 30 {
			t.Errorf("enemy[%d].Y = %d, expected 30 after descend", i, e.Y)
		}
	}
	if f.Enemies[0].X != 4 || f.Enemies[1].X != 462 {
		t.Errorf("positions after advance = %d, %d, expected 4, 462", f.Enemies[0].X, f.Enemies[1].X)
	}
}

func TestFormationEmptyBounds(t *testing.T) {
	var f Formation
	if !f.Bounds().Empty() {
		t.Errorf("Bounds() of an empty formation = %+v, expected empty", f.Bounds())
	}
	if !f.Cleared() {
		t.Error("Cleared() of an empty formation should report true")
	}
}
