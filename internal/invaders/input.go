package invaders

// InputState holds the held-direction flags sampled by every tick.
// Directions are level-triggered: they stay set until explicitly cleared.
type InputState struct {
	MoveLeft  bool
	MoveRight bool
}

// SetMoveLeft records whether the move-left control is held.
func (in *InputState) SetMoveLeft(held bool) {
	in.MoveLeft = held
}

// SetMoveRight records whether the move-right control is held.
func (in *InputState) SetMoveRight(held bool) {
	in.MoveRight = held
}

// Reset releases both directions.
func (in *InputState) Reset() {
	*in = InputState{}
}
