package stft

import "fmt"

// State is the analyzer's position in the per-window pipeline.
type State int

const (
	Idle State = iota
	WindowReady
	Windowed
	Transformed
	MagnitudeReady
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case WindowReady:
		return "window-ready"
	case Windowed:
		return "windowed"
	case Transformed:
		return "transformed"
	case MagnitudeReady:
		return "magnitude-ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
