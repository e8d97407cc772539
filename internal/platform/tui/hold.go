package tui

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// HoldTracker turns terminal key events into held directions.
// Terminals report a press and then auto-repeats, but never the release, so a
// direction counts as held until holdTicks frames pass without another event
// for it, or until the opposite direction is pressed.
type HoldTracker struct {
	holdTicks int
	left      int // Frames left before Left is released
	right     int // Frames left before Right is released
}

// NewHoldTracker creates a tracker. Non-positive holdTicks holds a press for
// a single frame.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{holdTicks: core.Max(holdTicks, 1)}
}

// Press records a press or auto-repeat. Non-direction actions are ignored.
// Pressing a direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action) {
	n := h.frames(a)
	if n == nil {
		return
	}
	*n = h.holdTicks
	if opp := h.frames(a.Opposite()); opp != nil {
		*opp = 0
	}
}

// frames returns the hold counter for a direction, or nil.
func (h *HoldTracker) frames(a core.Action) *int {
	switch a {
	case core.ActionLeft:
		return &h.left
	case core.ActionRight:
		return &h.right
	}
	return nil
}

// Held reports whether a direction is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	n := h.frames(a)
	return n != nil && *n > 0
}

// Apply writes the held directions into a session's input state.
func (h *HoldTracker) Apply(in *invaders.InputState) {
	in.SetMoveLeft(h.Held(core.ActionLeft))
	in.SetMoveRight(h.Held(core.ActionRight))
}

// Tick ages the held directions by one frame.
func (h *HoldTracker) Tick() {
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
}

// Release drops both directions at once.
func (h *HoldTracker) Release() {
	h.left, h.right = 0, 0
}
