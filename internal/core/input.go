package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move catcher left
	ActionRight             // D, Right arrow - move catcher right
	ActionStart             // Enter, Space - start a new game
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - save the play area as text
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
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
