// Package backend opens the storage backend selected in the configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/msomdec/bookshelf/internal/config"
	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/repository/jsonfile"
	"github.com/msomdec/bookshelf/internal/repository/sqlite"
)

// Open connects to the configured backend and brings its schema up to date.
// The caller owns the returned backend and must Close it.
func Open(ctx context.Context, cfg *config.Config) (domain.Backend, error) {
	var b domain.Backend
	switch cfg.StorageBackend {
	case config.BackendFile:
		b = jsonfile.New(cfg.DataDir)
		slog.Info("using file storage", "dir", cfg.DataDir)
	case config.BackendSQLite:
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		b = db
		slog.Info("using sqlite storage", "path", cfg.DatabasePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	if err := b.Migrate(ctx); err != nil {
		b.Close()
		return nil, fmt.Errorf("migrate storage: %w", err)
	}
	return b, nil
}
