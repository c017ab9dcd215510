package weather

import "errors"

// Status is the phase of a weather lookup.
type Status int

const (
	// Idle is the zero Status: no lookup is running and nothing is shown.
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the weather line's state machine: Loading, then Loaded or Failed.
// Both outcomes are terminal; a new lookup needs a new State. The zero State is
// Idle and renders nothing.
type State struct {
	status Status
	data   Data
	reason string
	err    error
}

// NewState returns a State in Loading.
func NewState() State {
	return State{status: Loading}
}

// Resolve applies the outcome of a lookup. It has no effect unless the state is Loading.
// Errors wrapping ErrLocationDenied fail with ReasonLocationDenied; every other error
// fails with ReasonFetchFailed.
func (s State) Resolve(data Data, err error) State {
	if s.status != Loading {
		return s
	}
	if err == nil {
		return State{status: Loaded, data: data}
	}
	reason := ReasonFetchFailed
	if errors.Is(err, ErrLocationDenied) {
		reason = ReasonLocationDenied
	}
	return State{status: Failed, reason: reason, err: err}
}

// Status returns the current phase.
func (s State) Status() Status { return s.status }

// Data returns the conditions once loaded.
func (s State) Data() (Data, bool) {
	return s.data, s.status == Loaded
}

// Reason returns the failure reason, or "" unless failed.
func (s State) Reason() string { return s.reason }

// Err returns the underlying failure, or nil.
func (s State) Err() error { return s.err }

// Text returns what the weather line displays: a loading hint, the summary, or
// nothing at all when idle or failed.
func (s State) Text() string {
	switch s.status {
	case Loading:
		return "Loading weather..."
	case Loaded:
		return s.data.Summary()
	default:
		return ""
	}
}
