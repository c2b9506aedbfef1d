package core

// Action represents a semantic input, abstracted from physical key presses.
// Backends translate their key events to actions so the state machine never
// sees a terminal library type.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow - menu up / move up
	ActionDown             // S, J, Down arrow - menu down / move down
	ActionLeft             // A, H, Left arrow - move left
	ActionRight            // D, L, Right arrow - move right
	ActionConfirm          // Enter, Space - confirm selection
	ActionBack             // B, Escape - go back one screen
	ActionPause            // P - pause/resume
	ActionQuit             // Q, Ctrl+C - exit
	ActionDigit            // 0-9, carries Input.Digit
	ActionBackspace        // Backspace - drop last digit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionDigit:
		return "Digit"
	case ActionBackspace:
		return "Backspace"
	default:
		return "Unknown"
	}
}

// Input is the single input event consumed by one tick.
// The zero value means "no key pending".
type Input struct {
	Action Action
	Digit  int // 0-9, only meaningful for ActionDigit
}

// Key returns an Input for a plain action.
func Key(a Action) Input {
	return Input{Action: a}
}

// DigitKey returns an Input for a digit key. d must be in [0, 9].
func DigitKey(d int) Input {
	return Input{Action: ActionDigit, Digit: Clamp(d, 0, 9)}
}

// IsNone reports whether no key was pending.
func (in Input) IsNone() bool {
	return in.Action == ActionNone
}
