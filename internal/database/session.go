package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akyairhashvil/countdown/internal/models"
)

func scanSession(row interface{ Scan(...interface{}) error }) (models.Session, error) {
	var s models.Session
	var outcome string
	if err := row.Scan(&s.ID, &s.StartedAt, &s.EndedAt, &s.TotalSeconds, &s.RemainingSeconds, &s.Pauses, &outcome); err != nil {
		return models.Session{}, err
	}
	s.Outcome = models.SessionOutcome(outcome)
	return s, nil
}

func validateSession(s models.Session) error {
	switch {
	case s.TotalSeconds < 0:
		return fmt.Errorf("%w: negative total %d", ErrInvalidSession, s.TotalSeconds)
	case s.RemainingSeconds < 0 || s.RemainingSeconds > s.TotalSeconds:
		return fmt.Errorf("%w: remaining %d outside [0, %d]", ErrInvalidSession, s.RemainingSeconds, s.TotalSeconds)
	case s.Outcome == "":
		return fmt.Errorf("%w: missing outcome", ErrInvalidSession)
	case s.EndedAt.Before(s.StartedAt):
		return fmt.Errorf("%w: ended before it started", ErrInvalidSession)
	}
	return nil
}

// RecordSession stores a finished countdown and returns its ID.
func (d *Database) RecordSession(ctx context.Context, s models.Session) (int64, error) {
	if err := validateSession(s); err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	res, err := d.DB.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, total_seconds, remaining_seconds, pauses, outcome)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.StartedAt.UTC(), s.EndedAt.UTC(), s.TotalSeconds, s.RemainingSeconds, s.Pauses, string(s.Outcome))
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	return id, nil
}

func (d *Database) GetSession(ctx context.Context, id int64) (models.Session, error) {
	query := fmt.Sprintf("SELECT %s FROM sessions WHERE id = ?", sessionColumns)
	s, err := scanSession(d.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, wrapSessionErr("get", id, ErrSessionNotFound)
	}
	if err != nil {
		return models.Session{}, wrapSessionErr("get", id, err)
	}
	return s, nil
}

// ListSessions runs q, or lists every session newest first when q is nil.
func (d *Database) ListSessions(ctx context.Context, q *SessionQuery) ([]models.Session, error) {
	if q == nil {
		q = NewSessionQuery()
	}
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	return sessions, nil
}

func (d *Database) SessionStats(ctx context.Context) (models.SessionStats, error) {
	var st models.SessionStats
	err := d.DB.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(total_seconds - remaining_seconds), 0)
		FROM sessions`,
		string(models.OutcomeCompleted), string(models.OutcomeCancelled),
		string(models.OutcomeSuperseded), string(models.OutcomeAbandoned),
	).Scan(&st.Total, &st.Completed, &st.Cancelled, &st.Superseded, &st.Abandoned, &st.CountedSeconds)
	if err != nil {
		return models.SessionStats{}, wrapSessionErr("stats", 0, err)
	}
	return st, nil
}

func (d *Database) ClearSessions(ctx context.Context) error {
	if _, err := d.DB.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return wrapSessionErr("clear", 0, err)
	}
	return nil
}
