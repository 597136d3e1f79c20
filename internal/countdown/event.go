package countdown

import (
	"fmt"
	"time"
)

// Cause tells observers why the engine published an event.
type Cause int

const (
	CauseStarted Cause = iota + 1
	CauseTicked
	CausePaused
	CauseResumed
	CauseCompleted
	CauseCancelled
	// CauseClosed is published when the engine is closed mid-countdown.
	CauseClosed
)

func (c Cause) String() string {
	switch c {
	case CauseStarted:
		return "started"
	case CauseTicked:
		return "ticked"
	case CausePaused:
		return "paused"
	case CauseResumed:
		return "resumed"
	case CauseCompleted:
		return "completed"
	case CauseCancelled:
		return "cancelled"
	case CauseClosed:
		return "closed"
	default:
		return fmt.Sprintf("cause(%d)", int(c))
	}
}

// Event is one publication of the engine state.
type Event struct {
	Cause Cause
	Prev  State
	State State
	At    time.Time
}

func (e Event) String() string {
	return fmt.Sprintf("%s: %s -> %s", e.Cause, e.Prev, e.State)
}
