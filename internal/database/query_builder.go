package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

const sessionColumns = "id, started_at, ended_at, total_seconds, remaining_seconds, pauses, outcome"

type SessionQuery struct {
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

// NewSessionQuery selects all sessions, newest first.
func NewSessionQuery() *SessionQuery {
	return &SessionQuery{orderBy: "started_at DESC, id DESC"}
}

func (q *SessionQuery) Where(filter string, args ...interface{}) *SessionQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *SessionQuery) WhereOutcome(outcome models.SessionOutcome) *SessionQuery {
	return q.Where("outcome = ?", string(outcome))
}

func (q *SessionQuery) Since(t time.Time) *SessionQuery {
	return q.Where("started_at >= ?", t)
}

func (q *SessionQuery) OrderBy(orderBy string) *SessionQuery {
	q.orderBy = orderBy
	return q
}

func (q *SessionQuery) Limit(limit int) *SessionQuery {
	q.limit = limit
	return q
}

func (q *SessionQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM sessions", sessionColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
