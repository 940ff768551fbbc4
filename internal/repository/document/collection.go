// Package document implements the user and book repositories on top of a
// domain.CollectionStore. Every operation reloads the whole collection;
// mutations rewrite it in full.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/msomdec/bookshelf/internal/domain"
)

// Collection is a typed view over one named collection document.
// Update calls are serialised, so concurrent mutations through the same
// Collection cannot overwrite each other.
type Collection[T any] struct {
	store domain.CollectionStore
	name  string
	mu    sync.Mutex
}

// NewCollection returns a Collection reading and writing name in store.
func NewCollection[T any](store domain.CollectionStore, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Load returns every record currently stored.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := c.store.Load(ctx, c.name)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageFormat, c.name, err)
	}
	return records, nil
}

// Save replaces the stored collection with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorageFormat, c.name, err)
	}
	return c.store.Save(ctx, c.name, data)
}

// Update loads the collection, passes it to fn and saves what fn returns.
// Nothing is written when fn fails.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}
	return c.Save(ctx, records)
}
