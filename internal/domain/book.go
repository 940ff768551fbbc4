package domain

import "context"

// Book is a catalogue entry. OwnerID is the creating user and never changes.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
	OwnerID       string `json:"ownerId"`
}

// BookPatch carries a partial update; nil fields keep their prior value.
type BookPatch struct {
	Title         *string
	Author        *string
	Genre         *string
	PublishedYear *int
}

// Apply copies the present fields onto b.
func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.PublishedYear != nil {
		b.PublishedYear = *p.PublishedYear
	}
}

// BookPage is one page of the catalogue.
type BookPage struct {
	Page  int
	Limit int
	Total int
	Books []Book
}

// BookRepository defines persistence operations for books.
//
// Update and Delete run check against the current record while the
// collection is held, so the check and the write see the same state.
type BookRepository interface {
	Create(ctx context.Context, book *Book) error
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (*Book, error)
	Update(ctx context.Context, id string, check func(*Book) error, patch BookPatch) (*Book, error)
	Delete(ctx context.Context, id string, check func(*Book) error) error
}
