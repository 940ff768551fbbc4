package document

import (
	"context"

	"github.com/msomdec/bookshelf/internal/domain"
)

// BookRepository implements domain.BookRepository over the books collection.
type BookRepository struct {
	books *Collection[domain.Book]
}

// NewBookRepository creates a BookRepository backed by store.
func NewBookRepository(store domain.CollectionStore) *BookRepository {
	return &BookRepository{books: NewCollection[domain.Book](store, domain.CollectionBooks)}
}

// Create appends book unless another book has the same title and author,
// in which case a *domain.DuplicateBookError names the existing one.
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	return r.books.Update(ctx, func(books []domain.Book) ([]domain.Book, error) {
		for _, b := range books {
			if b.Title == book.Title && b.Author == book.Author {
				return nil, &domain.DuplicateBookError{ExistingID: b.ID}
			}
		}
		return append(books, *book), nil
	})
}

// List returns all books in insertion order.
func (r *BookRepository) List(ctx context.Context) ([]domain.Book, error) {
	return r.books.Load(ctx)
}

func (r *BookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	books, err := r.books.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(books, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return &books[i], nil
}

// Update applies patch to the book with id once check accepts it. A patch
// that would give it the title and author of another book yields a
// *domain.DuplicateBookError and nothing is written.
func (r *BookRepository) Update(ctx context.Context, id string, check func(*domain.Book) error, patch domain.BookPatch) (*domain.Book, error) {
	var updated domain.Book
	err := r.books.Update(ctx, func(books []domain.Book) ([]domain.Book, error) {
		i := indexOf(books, id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		if check != nil {
			if err := check(&books[i]); err != nil {
				return nil, err
			}
		}
		candidate := books[i]
		patch.Apply(&candidate)
		for j := range books {
			if j != i && books[j].Title == candidate.Title && books[j].Author == candidate.Author {
				return nil, &domain.DuplicateBookError{ExistingID: books[j].ID}
			}
		}
		books[i] = candidate
		updated = candidate
		return books, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BookRepository) Delete(ctx context.Context, id string, check func(*domain.Book) error) error {
	return r.books.Update(ctx, func(books []domain.Book) ([]domain.Book, error) {
		i := indexOf(books, id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		if check != nil {
			if err := check(&books[i]); err != nil {
				return nil, err
			}
		}
		return append(books[:i], books[i+1:]...), nil
	})
}

func indexOf(books []domain.Book, id string) int {
	for i := range books {
		if books[i].ID == id {
			return i
		}
	}
	return -1
}
