package testutil

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	started := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &SessionBuilder{
		session: models.Session{
			StartedAt:    started,
			EndedAt:      started.Add(5 * time.Minute),
			TotalSeconds: 300,
			Outcome:      models.OutcomeCompleted,
		},
	}
}

func (b *SessionBuilder) WithTotal(seconds int) *SessionBuilder {
	b.session.TotalSeconds = seconds
	b.session.EndedAt = b.session.StartedAt.Add(time.Duration(seconds) * time.Second)
	return b
}

func (b *SessionBuilder) StartedAt(t time.Time) *SessionBuilder {
	elapsed := b.session.EndedAt.Sub(b.session.StartedAt)
	b.session.StartedAt = t
	b.session.EndedAt = t.Add(elapsed)
	return b
}

func (b *SessionBuilder) Cancelled(remaining int) *SessionBuilder {
	b.session.Outcome = models.OutcomeCancelled
	b.session.RemainingSeconds = remaining
	return b
}

func (b *SessionBuilder) WithOutcome(o models.SessionOutcome) *SessionBuilder {
	b.session.Outcome = o
	return b
}

func (b *SessionBuilder) WithPauses(n int) *SessionBuilder {
	b.session.Pauses = n
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
