package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestOpen_BadPath(t *testing.T) {
	ctx := context.Background()
	_, err := Open(ctx, filepath.Join(t.TempDir(), "missing", "dir", "test.db"))
	if err == nil {
		t.Fatalf("expected error for unreachable path")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %T", err)
	}
}

func TestCloseNilDatabase(t *testing.T) {
	var d *Database
	if err := d.Close(); err != nil {
		t.Fatalf("Close on nil database: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, ok := db.GetSetting(ctx, "theme"); ok {
		t.Fatalf("expected missing setting")
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "theme", "default"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	got, ok := db.GetSetting(ctx, "theme")
	if !ok || got != "default" {
		t.Fatalf("GetSetting = %q, %v", got, ok)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	base := errors.New("boom")
	err := wrapSessionErr("get", 7, base)
	if err.Error() != "get session 7: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected OpError to unwrap")
	}
	if wrapSessionErr("get", 1, nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	noID := &OpError{Op: "list", Resource: "session", Err: base}
	if noID.Error() != "list session: boom" {
		t.Fatalf("unexpected message %q", noID.Error())
	}
}
