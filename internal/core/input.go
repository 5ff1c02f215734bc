package core

// Action is a semantic command, abstracted from physical keys and buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space / Up / W or a left click while playing
	ActionStart          // Enter - start a round from the menu
	ActionRestart        // R - play again after game over
	ActionBack           // B / Esc - back to the menu
	ActionScores         // Tab - open the round history
	ActionDismiss        // X - close the reward panel
	ActionQuit           // Q / Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionScores:
		return "Scores"
	case ActionDismiss:
		return "Dismiss"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource identifies which physical trigger produced an impulse request.
// Both sources are equivalent to the simulation.
type InputSource int

const (
	SourceKey     InputSource = iota // designated key activation
	SourcePointer                    // primary pointer activation
)

func (s InputSource) String() string {
	if s == SourcePointer {
		return "pointer"
	}
	return "key"
}
