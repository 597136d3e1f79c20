package database

import (
	"context"
	"testing"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
)

type TestDataBuilder struct {
	t   *testing.T
	ctx context.Context
	db  *Database
	ids []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithSession(s models.Session) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.RecordSession(b.ctx, s)
	if err != nil {
		b.t.Fatalf("RecordSession failed: %v", err)
	}
	b.ids = append(b.ids, id)
	return b
}

func (b *TestDataBuilder) WithCompleted(count int, total int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		b.WithSession(testutil.NewSession().WithTotal(total).Build())
	}
	return b
}

func (b *TestDataBuilder) Build() (*Database, []int64) {
	return b.db, b.ids
}
