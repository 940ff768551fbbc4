package handler

import "github.com/msomdec/bookshelf/internal/domain"

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email}
}

// BookDTO is the JSON representation of a book.
type BookDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
	OwnerID       string `json:"ownerId"`
}

func toBookDTO(b *domain.Book) BookDTO {
	return BookDTO{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		PublishedYear: b.PublishedYear,
		OwnerID:       b.OwnerID,
	}
}

func toBookDTOs(books []domain.Book) []BookDTO {
	dtos := make([]BookDTO, len(books))
	for i := range books {
		dtos[i] = toBookDTO(&books[i])
	}
	return dtos
}
