package game

// State is the round loop's position in its lifecycle
type State int

const (
	StateAwaitingStart State = iota
	StateRunning
	StateRoundInProgress
	StateRoundScored
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateAwaitingStart:
		return "AwaitingStart"
	case StateRunning:
		return "Running"
	case StateRoundInProgress:
		return "RoundInProgress"
	case StateRoundScored:
		return "RoundScored"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}
