package core

// Action represents a semantic game action, abstracted from physical key presses.
// The front end maps keys to actions; the game reacts to actions only.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - hold to move left
	ActionRight          // Right arrow, D, L - hold to move right
	ActionFire           // Space, W, Up - one bullet per press
	ActionRestart        // R, Enter - start a fresh session after a terminal state
	ActionHelp           // ? - toggle the full key help
	ActionQuit           // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Opposite returns the other horizontal direction, or ActionNone for
// actions that are not directions.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}
