package models

import "time"

// SessionOutcome enumerates how a countdown ended.
type SessionOutcome string

const (
	OutcomeCompleted SessionOutcome = "completed"
	OutcomeCancelled SessionOutcome = "cancelled"
	// OutcomeSuperseded means a new countdown was started over this one.
	OutcomeSuperseded SessionOutcome = "superseded"
	// OutcomeAbandoned means the application shut down mid-countdown.
	OutcomeAbandoned SessionOutcome = "abandoned"
)

// Session represents one countdown from start to its end.
type Session struct {
	ID               int64
	StartedAt        time.Time
	EndedAt          time.Time
	TotalSeconds     int
	RemainingSeconds int // 0 for completed sessions
	Pauses           int
	Outcome          SessionOutcome
}

// CountedSeconds is how much of the countdown actually ran down.
func (s Session) CountedSeconds() int {
	n := s.TotalSeconds - s.RemainingSeconds
	if n < 0 {
		return 0
	}
	return n
}

// SessionStats aggregates the recorded history.
type SessionStats struct {
	Total          int
	Completed      int
	Cancelled      int
	Superseded     int
	Abandoned      int
	CountedSeconds int64
}

// CompletionRate is the share of sessions that reached zero.
func (s SessionStats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}
