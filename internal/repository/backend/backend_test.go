package backend_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/bookshelf/internal/config"
	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/repository/backend"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"file", config.Config{StorageBackend: config.BackendFile, DataDir: filepath.Join(dir, "data")}},
		{"sqlite", config.Config{StorageBackend: config.BackendSQLite, DatabasePath: filepath.Join(dir, "test.db")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			b, err := backend.Open(ctx, &tc.cfg)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer b.Close()

			if err := b.Save(ctx, domain.CollectionBooks, []byte(`[{"id":"1"}]`)); err != nil {
				t.Fatalf("Save: %v", err)
			}
			data, err := b.Load(ctx, domain.CollectionBooks)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(data) != `[{"id":"1"}]` {
				t.Fatalf("unexpected document %s", data)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := backend.Open(context.Background(), &config.Config{StorageBackend: "tape"})
	if err == nil {
		t.Fatal("expected error")
	}
}
