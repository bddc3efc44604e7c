package pipeline

// State enumerates the phases of a download run. Transitions are strictly
// forward; Failed is reachable from any phase before Done.
type State uint8

const (
	StateResolved State = iota + 1
	StateSelecting
	StateRetrieving
	StateMuxing
	StateCleaning
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateResolved:
		return "resolved"
	case StateSelecting:
		return "selecting"
	case StateRetrieving:
		return "retrieving"
	case StateMuxing:
		return "muxing"
	case StateCleaning:
		return "cleaning"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Reporter receives state transitions for presentation. Implementations must
// not block; the pipeline calls them inline.
type Reporter interface {
	Transition(state State, detail string)
}

// NopReporter discards all transitions.
type NopReporter struct{}

func (NopReporter) Transition(State, string) {}
