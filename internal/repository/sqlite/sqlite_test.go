package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/repository/sqlite"
)

// Verify that *sqlite.DB implements domain.Backend at compile time.
var _ domain.Backend = (*sqlite.DB)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	if err := db.SqlDB.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 migration record, got %d", count)
	}
}

func TestLoad_UnsavedCollectionIsEmptyArray(t *testing.T) {
	db := newTestDB(t)

	data, err := db.Load(context.Background(), domain.CollectionBooks)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestSave_ReplacesDocument(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Save(ctx, domain.CollectionUsers, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := db.Save(ctx, domain.CollectionUsers, []byte(`[{"id":"a"},{"id":"b"}]`)); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	data, err := db.Load(ctx, domain.CollectionUsers)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != `[{"id":"a"},{"id":"b"}]` {
		t.Fatalf("unexpected document %s", data)
	}

	var rows int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM collections").Scan(&rows); err != nil {
		t.Fatalf("count collections: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row, got %d", rows)
	}
}

func TestSave_CollectionsAreIndependent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Save(ctx, domain.CollectionUsers, []byte(`[{"id":"u"}]`)); err != nil {
		t.Fatalf("Save users: %v", err)
	}

	data, err := db.Load(ctx, domain.CollectionBooks)
	if err != nil {
		t.Fatalf("Load books: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected books to stay empty, got %s", data)
	}
}
