package game

// State names the phase of the state machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// phase is the tagged variant behind Engine. Only the Playing and GameOver
// variants carry a World, so "playing without a world" cannot be expressed.
type phase interface {
	state() State
}

type menuPhase struct{}

type playingPhase struct {
	world World
}

// gameOverPhase holds the frozen final World of the round.
type gameOverPhase struct {
	world   World
	newBest bool
}

func (menuPhase) state() State     { return StateMenu }
func (playingPhase) state() State  { return StatePlaying }
func (gameOverPhase) state() State { return StateGameOver }
