package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
)

func TestRecordAndGetSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	want := testutil.NewSession().WithTotal(90).Cancelled(30).WithPauses(2).Build()
	id, err := db.RecordSession(ctx, want)
	if err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	got, err := db.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != id || got.TotalSeconds != 90 || got.RemainingSeconds != 30 || got.Pauses != 2 {
		t.Fatalf("unexpected session %+v", got)
	}
	if got.Outcome != models.OutcomeCancelled {
		t.Fatalf("unexpected outcome %q", got.Outcome)
	}
	if !got.StartedAt.Equal(want.StartedAt) || !got.EndedAt.Equal(want.EndedAt) {
		t.Fatalf("timestamps changed: %v/%v vs %v/%v", got.StartedAt, got.EndedAt, want.StartedAt, want.EndedAt)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	_, err := db.GetSession(ctx, 42)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRecordSessionValidation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	bad := []models.Session{
		testutil.NewSession().WithTotal(-1).Build(),
		testutil.NewSession().WithTotal(10).Cancelled(11).Build(),
		testutil.NewSession().WithOutcome("").Build(),
	}
	backwards := testutil.NewSession().Build()
	backwards.EndedAt = backwards.StartedAt.Add(-time.Second)
	bad = append(bad, backwards)

	for _, s := range bad {
		if _, err := db.RecordSession(ctx, s); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession for %+v, got %v", s, err)
		}
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	db, _ := NewTestDataBuilder(t).
		WithSession(testutil.NewSession().StartedAt(base).Build()).
		WithSession(testutil.NewSession().StartedAt(base.Add(2 * time.Hour)).Cancelled(10).Build()).
		WithSession(testutil.NewSession().StartedAt(base.Add(time.Hour)).Build()).
		Build()
	ctx := context.Background()

	all, err := db.ListSessions(ctx, nil)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].StartedAt.After(all[i-1].StartedAt) {
			t.Fatalf("sessions not newest first: %v", all)
		}
	}

	limited, err := db.ListSessions(ctx, NewSessionQuery().Limit(1))
	if err != nil {
		t.Fatalf("ListSessions limit failed: %v", err)
	}
	if len(limited) != 1 || limited[0].Outcome != models.OutcomeCancelled {
		t.Fatalf("unexpected limited result %+v", limited)
	}

	completed, err := db.ListSessions(ctx, NewSessionQuery().WhereOutcome(models.OutcomeCompleted).Since(base.Add(30*time.Minute)))
	if err != nil {
		t.Fatalf("ListSessions filter failed: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("expected one completed session after cutoff, got %d", len(completed))
	}
}

func TestSessionStats(t *testing.T) {
	ctx := context.Background()
	empty := setupTestDB(t, ctx)
	st, err := empty.SessionStats(ctx)
	if err != nil {
		t.Fatalf("SessionStats on empty db failed: %v", err)
	}
	if st != (models.SessionStats{}) {
		t.Fatalf("expected zero stats, got %+v", st)
	}

	db, _ := NewTestDataBuilder(t).
		WithCompleted(2, 60).
		WithSession(testutil.NewSession().WithTotal(100).Cancelled(40).Build()).
		WithSession(testutil.NewSession().WithTotal(30).Cancelled(10).WithOutcome(models.OutcomeSuperseded).Build()).
		WithSession(testutil.NewSession().WithTotal(20).Cancelled(20).WithOutcome(models.OutcomeAbandoned).Build()).
		Build()
	st, err = db.SessionStats(ctx)
	if err != nil {
		t.Fatalf("SessionStats failed: %v", err)
	}
	want := models.SessionStats{
		Total:          5,
		Completed:      2,
		Cancelled:      1,
		Superseded:     1,
		Abandoned:      1,
		CountedSeconds: 60 + 60 + 60 + 20 + 0,
	}
	if st != want {
		t.Fatalf("SessionStats = %+v, want %+v", st, want)
	}
}

func TestClearSessions(t *testing.T) {
	db, _ := NewTestDataBuilder(t).WithCompleted(3, 10).Build()
	ctx := context.Background()
	if err := db.ClearSessions(ctx); err != nil {
		t.Fatalf("ClearSessions failed: %v", err)
	}
	all, err := db.ListSessions(ctx, nil)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty history, got %d", len(all))
	}
}

func TestSessionQueryBuild(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args := NewSessionQuery().WhereOutcome(models.OutcomeCompleted).Since(since).Limit(5).Build()
	want := "SELECT " + sessionColumns + " FROM sessions WHERE outcome = ? AND started_at >= ? ORDER BY started_at DESC, id DESC LIMIT 5"
	if query != want {
		t.Fatalf("Build() = %q\nwant %q", query, want)
	}
	if len(args) != 2 || args[0] != "completed" {
		t.Fatalf("unexpected args %v", args)
	}
}
