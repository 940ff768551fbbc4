package domain

import "context"

// Database defines lifecycle operations for a storage backend.
// Each implementation (flat files, SQLite) owns its own preparation
// strategy, keeping the backend swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

// CollectionStore loads and saves named collections as whole JSON array
// documents. Save always replaces the entire collection.
// A collection that was never saved loads as an empty array.
type CollectionStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

// Backend is a prepared storage backend serving collections.
type Backend interface {
	Database
	CollectionStore
}

// Collection names.
const (
	CollectionUsers = "users"
	CollectionBooks = "books"
)
