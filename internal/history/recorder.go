// Package history turns engine events into session records.
package history

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
)

// Store persists finished sessions.
//
//go:generate mockgen -destination=mock_store_test.go -package=history . Store
type Store interface {
	RecordSession(ctx context.Context, s models.Session) (int64, error)
}

// Recorder follows one engine's events and writes a session each time a
// countdown ends, however it ends.
type Recorder struct {
	store    Store
	current  *models.Session
	// recorded is called after each session is stored.
	recorded func(models.Session)
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// active reports whether a countdown is being tracked. It must be called
// from the goroutine driving Handle.
func (r *Recorder) active() bool {
	return r.current != nil
}

// Run consumes events until the channel is closed or ctx is done.
func (r *Recorder) Run(ctx context.Context, events <-chan countdown.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			util.LogError("history: record session", r.Handle(ctx, ev))
		}
	}
}

// Handle applies one event. It returns the store error, if any, from
// recording a finished session.
func (r *Recorder) Handle(ctx context.Context, ev countdown.Event) error {
	switch ev.Cause {
	case countdown.CauseStarted:
		var err error
		if r.current != nil {
			err = r.finish(ctx, ev.At, remainingOf(ev.Prev), models.OutcomeSuperseded)
		}
		total, _ := ev.State.Remaining()
		r.current = &models.Session{StartedAt: ev.At, TotalSeconds: total}
		return err
	case countdown.CausePaused:
		if r.current != nil {
			r.current.Pauses++
		}
	case countdown.CauseCompleted:
		return r.finish(ctx, ev.At, 0, models.OutcomeCompleted)
	case countdown.CauseCancelled:
		return r.finish(ctx, ev.At, remainingOf(ev.Prev), models.OutcomeCancelled)
	case countdown.CauseClosed:
		return r.finish(ctx, ev.At, remainingOf(ev.Prev), models.OutcomeAbandoned)
	}
	return nil
}

func (r *Recorder) finish(ctx context.Context, at time.Time, remaining int, outcome models.SessionOutcome) error {
	if r.current == nil {
		return nil
	}
	s := *r.current
	r.current = nil
	s.EndedAt = at
	s.RemainingSeconds = remaining
	s.Outcome = outcome

	id, err := r.store.RecordSession(ctx, s)
	if err != nil {
		return err
	}
	s.ID = id
	if r.recorded != nil {
		r.recorded(s)
	}
	return nil
}

func remainingOf(st countdown.State) int {
	n, _ := st.Remaining()
	return n
}
