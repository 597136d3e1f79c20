package countdown

import "fmt"

// Status is the lifecycle classification of the engine.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is the single source of truth for the engine: a status tagged with
// the remaining whole seconds. The remaining value is absent iff the status
// is idle. The zero State is Idle.
type State struct {
	status    Status
	remaining int
}

func Idle() State {
	return State{}
}

func Running(remaining int) State {
	return State{status: StatusRunning, remaining: nonNegative(remaining)}
}

func Paused(remaining int) State {
	return State{status: StatusPaused, remaining: nonNegative(remaining)}
}

func (s State) Status() Status {
	return s.status
}

// Remaining reports the seconds left and whether a countdown is active.
func (s State) Remaining() (int, bool) {
	if s.status == StatusIdle {
		return 0, false
	}
	return s.remaining, true
}

func (s State) IsIdle() bool    { return s.status == StatusIdle }
func (s State) IsRunning() bool { return s.status == StatusRunning }
func (s State) IsPaused() bool  { return s.status == StatusPaused }

func (s State) String() string {
	if s.status == StatusIdle {
		return "Idle"
	}
	if s.status == StatusRunning {
		return fmt.Sprintf("Running(%d)", s.remaining)
	}
	return fmt.Sprintf("Paused(%d)", s.remaining)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
