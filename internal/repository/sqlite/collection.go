package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/bookshelf/internal/domain"
)

func (d *DB) Load(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := d.SqlDB.QueryRowContext(ctx,
		"SELECT data FROM collections WHERE name = ?", name,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []byte("[]"), nil
		}
		return nil, fmt.Errorf("%w: load collection %s: %v", domain.ErrStorageIO, name, err)
	}
	return data, nil
}

// Save replaces the collection document inside a transaction.
func (d *DB) Save(ctx context.Context, name string, data []byte) error {
	tx, err := d.SqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStorageIO, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: save collection %s: %v", domain.ErrStorageIO, name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageIO, err)
	}
	return nil
}
