package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/msomdec/bookshelf/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// BookInput holds the fields of a new book.
type BookInput struct {
	Title         string
	Author        string
	Genre         string
	PublishedYear int
}

// BookService handles catalogue operations and ownership checks.
type BookService struct {
	books domain.BookRepository
}

// NewBookService creates a new BookService.
func NewBookService(books domain.BookRepository) *BookService {
	return &BookService{books: books}
}

// Create adds a book owned by ownerID. A book with the same title and
// author yields a *domain.DuplicateBookError carrying the existing id.
func (s *BookService) Create(ctx context.Context, ownerID string, in BookInput) (*domain.Book, error) {
	if in.Title == "" || in.Author == "" || in.Genre == "" {
		return nil, fmt.Errorf("%w: title, author, and genre are required", domain.ErrInvalidInput)
	}

	book := &domain.Book{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Author:        in.Author,
		Genre:         in.Genre,
		PublishedYear: in.PublishedYear,
		OwnerID:       ownerID,
	}

	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// List returns one page of the catalogue. Non-positive page or limit fall
// back to DefaultPage and DefaultLimit. An empty catalogue is
// domain.ErrNotFound whatever page is asked for; a page past the end is
// empty but still reports the total.
func (s *BookService) List(ctx context.Context, page, limit int) (*domain.BookPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if len(books) == 0 {
		return nil, domain.ErrNotFound
	}

	result := &domain.BookPage{
		Page:  page,
		Limit: limit,
		Total: len(books),
		Books: []domain.Book{},
	}
	// Bounds are checked before multiplying so huge values cannot overflow.
	if page-1 > (len(books)-1)/limit {
		return result, nil
	}
	start := (page - 1) * limit
	end := start + min(limit, len(books)-start)
	result.Books = books[start:end]
	return result, nil
}

// SearchByGenre returns books whose genre equals genre, ignoring case.
func (s *BookService) SearchByGenre(ctx context.Context, genre string) ([]domain.Book, error) {
	if genre == "" {
		return nil, fmt.Errorf("%w: genre is required", domain.ErrInvalidInput)
	}

	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	var matches []domain.Book
	for _, b := range books {
		if strings.EqualFold(b.Genre, genre) {
			matches = append(matches, b)
		}
	}
	if len(matches) == 0 {
		return nil, domain.ErrNotFound
	}
	return matches, nil
}

// GetByID returns a book by ID.
func (s *BookService) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

// Update applies patch to the book if requesterID owns it.
func (s *BookService) Update(ctx context.Context, id, requesterID string, patch domain.BookPatch) (*domain.Book, error) {
	return s.books.Update(ctx, id, authorizeOwner(requesterID), patch)
}

// Delete removes the book if requesterID owns it.
func (s *BookService) Delete(ctx context.Context, id, requesterID string) error {
	return s.books.Delete(ctx, id, authorizeOwner(requesterID))
}

func authorizeOwner(requesterID string) func(*domain.Book) error {
	return func(b *domain.Book) error {
		if b.OwnerID != requesterID {
			return domain.ErrForbidden
		}
		return nil
	}
}
