package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestLoopStartRendersAndRequests(t *testing.T) {
	s := NewSession(config.DefaultInvadersConfig())
	q := NewFrameQueue()
	dst := newRecordingSurface(480, 320)
	loop := NewLoop(s, dst, q)

	loop.Start()

	if dst.clears != 1 {
		t.Errorf("Start() should render the initial frame, Clear() called %d times", dst.clears)
	}
	if s.Tick() != 0 {
		t.Errorf("Start() should not simulate, Tick() = %d", s.Tick())
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d after Start(), expected 1", q.Pending())
	}
	if !loop.Running() {
		t.Error("Running() = false after Start()")
	}

	loop.Start()
	if q.Pending() != 1 {
		t.Errorf("starting twice queued %d frames, expected 1", q.Pending())
	}
}

func TestLoopOneUpdatePerFrame(t *testing.T) {
	s := NewSession(config.DefaultInvadersConfig())
	q := NewFrameQueue()
	dst := newRecordingSurface(480, 320)
	loop := NewLoop(s, dst, q)
	loop.Start()

	for i := 1; i <= 10; i++ {
		if ran := q.RunPending(); ran != 1 {
			t.Fatalf("frame %d ran %d callbacks, expected 1", i, ran)
		}
		if s.Tick() != uint64(i) {
			t.Fatalf("Tick() = %d after %d frames", s.Tick(), i)
		}
		if q.Pending() != 1 {
			t.Fatalf("frame %d left %d requests, expected 1", i, q.Pending())
		}
	}
	if dst.clears != 11 {
		t.Errorf("Clear() called %d times, expected 11 (initial + 10 frames)", dst.clears)
	}
}

func TestLoopStop(t *testing.T) {
	s := NewSession(config.DefaultInvadersConfig())
	q := NewFrameQueue()
	loop := NewLoop(s, newRecordingSurface(480, 320), q)
	loop.Start()
	q.RunPending()

	loop.Stop()

	if loop.Running() {
		t.Error("Running() = true after Stop()")
	}
	if q.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop(), expected 0", q.Pending())
	}
	if ran := q.RunPending(); ran != 0 {
		t.Errorf("RunPending() ran %d callbacks after Stop()", ran)
	}
	if s.Tick() != 1 {
		t.Errorf("Tick() = %d, expected 1", s.Tick())
	}
}

func TestLoopStartOnFinishedSession(t *testing.T) {
	s := NewSession(singleEnemyConfig())
	placeEnemy(s, 100, 100)
	s.bullets = []Bullet{{Rect: core.NewRect(110, 115, 3, 10), DY: -7}}
	s.Update()

	q := NewFrameQueue()
	loop := NewLoop(s, newRecordingSurface(480, 320), q)
	loop.Start()

	if loop.Running() || q.Pending() != 0 {
		t.Error("Start() on a finished session should do nothing")
	}
}

func TestLoopHaltsOnTerminalState(t *testing.T) {
	s := NewSession(singleEnemyConfig())
	placeEnemy(s, 100, 100)
	q := NewFrameQueue()
	dst := &restartSurface{recordingSurface: newRecordingSurface(480, 320)}
	loop := NewLoop(s, dst, q)

	var halted []State
	loop.OnHalt(func(st State) { halted = append(halted, st) })
	loop.Start()

	s.bullets = []Bullet{{Rect: core.NewRect(110, 115, 3, 10), DY: -7}}
	q.RunPending()

	if s.State() != StateCleared {
		t.Fatalf("State() = %s, expected cleared", s.State())
	}
	if loop.Running() {
		t.Error("loop should stop after the session ends")
	}
	if q.Pending() != 0 {
		t.Errorf("Pending() = %d, expected no further frames", q.Pending())
	}
	if len(halted) != 1 || halted[0] != StateCleared {
		t.Errorf("OnHalt got %v, expected [cleared]", halted)
	}
	if dst.shown != 1 {
		t.Errorf("ShowRestart() called %d times, expected 1", dst.shown)
	}
}

func TestFrameQueueDefersNewRequests(t *testing.T) {
	q := NewFrameQueue()
	var order []string

	q.RequestFrame(func() {
		order = append(order, "a")
		q.RequestFrame(func() { order = append(order, "c") })
	})
	q.RequestFrame(func() { order = append(order, "b") })

	if ran := q.RunPending(); ran != 2 {
		t.Errorf("RunPending() = %d, expected 2", ran)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, expected [a b]", order)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d, expected the request made while running", q.Pending())
	}

	q.RunPending()
	if len(order) != 3 || order[2] != "c" {
		t.Errorf("order = %v, expected [a b c]", order)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	var ran []int

	id1 := q.RequestFrame(func() { ran = append(ran, 1) })
	var id3 FrameID
	q.RequestFrame(func() {
		ran = append(ran, 2)
		q.CancelFrame(id3)
	})
	id3 = q.RequestFrame(func() { ran = append(ran, 3) })

	q.CancelFrame(id1)
	q.CancelFrame(FrameID(999))

	if got := q.RunPending(); got != 1 {
		t.Errorf("RunPending() = %d, expected 1", got)
	}
	if len(ran) != 1 || ran[0] != 2 {
		t.Errorf("ran = %v, expected [2]", ran)
	}
}

// TestLoopClearsStage plays a scripted game to the cleared state through the
// loop: every shot is aimed at the lowest enemy so that the bullet meets it
// on a known frame.
func TestLoopClearsStage(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Player.BottomOffset = 180 // ship row at y=140, just under the formation
	cfg.Enemy.Speed = 1

	s := NewSession(cfg)
	q := NewFrameQueue()
	dst := &restartSurface{recordingSurface: newRecordingSurface(480, 320)}
	loop := NewLoop(s, dst, q)

	var halted []State
	loop.OnHalt(func(st State) { halted = append(halted, st) })
	loop.Start()

	bulletHalf := cfg.Bullet.Width / 2
	for shot := 1; shot <= 15; shot++ {
		enemies := s.Enemies()
		target := enemies[0]
		for _, e := range enemies[1:] {
			if e.Y > target.Y {
				target = e
			}
		}

		// Frames until the bullet's top edge rises above the target's bottom.
		k := 1
		for s.player.Y-cfg.Bullet.Speed*k >= target.Bottom() {
			k++
		}
		dx := s.Formation().DX
		// Put the bullet 8px inside the target's left edge on impact.
		s.player.X = target.X + dx*k + 8 - (s.player.W/2 - bulletHalf)

		if !s.Fire() {
			t.Fatalf("shot %d: Fire() refused", shot)
		}
		for f := 1; f <= k; f++ {
			if q.RunPending() != 1 {
				t.Fatalf("shot %d frame %d: loop stopped early in state %s", shot, f, s.State())
			}
		}

		if got := len(s.Enemies()); got != len(enemies)-1 {
			t.Fatalf("shot %d: %d enemies left, expected %d", shot, got, len(enemies)-1)
		}
		if len(s.Bullets()) != 0 {
			t.Fatalf("shot %d: bullet should be consumed", shot)
		}
	}

	if s.State() != StateCleared {
		t.Fatalf("State() = %s, expected cleared", s.State())
	}
	if loop.Running() || q.Pending() != 0 {
		t.Error("no frames should be requested after the stage is cleared")
	}
	if len(halted) != 1 || halted[0] != StateCleared {
		t.Errorf("OnHalt got %v, expected [cleared]", halted)
	}
	if len(dst.texts) != 1 || dst.texts[0].text != "Stage Clear" {
		t.Errorf("final frame texts = %+v, expected \"Stage Clear\"", dst.texts)
	}
	if dst.shown != 1 {
		t.Errorf("ShowRestart() called %d times, expected 1", dst.shown)
	}
}
