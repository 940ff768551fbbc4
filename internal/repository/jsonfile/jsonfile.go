// Package jsonfile stores each collection as a JSON array file inside a
// data directory, e.g. data/users.json and data/books.json.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/msomdec/bookshelf/internal/domain"
)

// Store implements domain.Backend on the local filesystem.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. Call Migrate before use.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Migrate creates the data directory and an empty file for every known
// collection that does not exist yet. Existing files are left untouched.
func (s *Store) Migrate(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", domain.ErrStorageIO, err)
	}
	for _, name := range []string{domain.CollectionUsers, domain.CollectionBooks} {
		_, err := os.Stat(s.path(name))
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: stat %s: %v", domain.ErrStorageIO, name, err)
		}
		if err := s.Save(ctx, name, []byte("[]")); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error { return nil }

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []byte("[]"), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageIO, name, err)
	}
	return data, nil
}

// Save writes to a temporary file next to the target and renames it into
// place, so a reader sees either the old or the new document.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %v", domain.ErrStorageIO, name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageIO, name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync %s: %v", domain.ErrStorageIO, name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrStorageIO, name, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", domain.ErrStorageIO, name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrStorageIO, name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
