package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/service"
)

// BookHandler handles catalogue HTTP requests. Every route expects
// RequireAuth to have run.
type BookHandler struct {
	books *service.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(books *service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

// yearValue keeps the raw text of publishedYear so that strings, booleans
// and other non-numbers reach validation instead of failing the decode.
// A quoted value is unquoted first.
type yearValue string

func (y *yearValue) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = yearValue(strings.TrimSpace(s))
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}
	*y = yearValue(data)
	return nil
}

type createBookRequest struct {
	Title         string      `json:"title" validate:"required,min=3"`
	Author        string      `json:"author" validate:"required,min=3"`
	Genre         string      `json:"genre" validate:"required,min=3"`
	PublishedYear yearValue `json:"publishedYear" validate:"required,numeric"`
}

type updateBookRequest struct {
	Title         *string      `json:"title" validate:"omitnil,min=3"`
	Author        *string      `json:"author" validate:"omitnil,min=3"`
	Genre         *string      `json:"genre" validate:"omitnil,min=3"`
	PublishedYear *yearValue `json:"publishedYear" validate:"omitnil,numeric"`
}

// HandleCreate adds a book owned by the caller.
// POST /api/books
func (h *BookHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var req createBookRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.Genre = strings.TrimSpace(req.Genre)
	if !validateRequest(w, &req) {
		return
	}
	year, ok := parseYear(w, req.PublishedYear)
	if !ok {
		return
	}

	book, err := h.books.Create(r.Context(), identity.UserID, service.BookInput{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedYear: year,
	})
	if err != nil {
		var dup *domain.DuplicateBookError
		if errors.As(err, &dup) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"message": "Book already exists",
				"id":      dup.ExistingID,
			})
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeInternalError(w, "create book", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Book created successfully",
		"book":    toBookDTO(book),
	})
}

// HandleList returns one page of the catalogue.
// GET /api/books?page=&limit=
func (h *BookHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", service.DefaultPage)
	limit := queryInt(r, "limit", service.DefaultLimit)

	result, err := h.books.List(r.Context(), page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No books found")
			return
		}
		writeInternalError(w, "list books", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"page":  result.Page,
		"limit": result.Limit,
		"total": result.Total,
		"books": toBookDTOs(result.Books),
	})
}

// HandleSearch returns books of a genre, ignoring case.
// GET /api/books/search?genre=
func (h *BookHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.SearchByGenre(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Genre is required")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No books found for the specified genre")
			return
		}
		writeInternalError(w, "search books", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"books": toBookDTOs(books)})
}

// HandleGet returns a single book.
// GET /api/books/{id}
func (h *BookHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	book, err := h.books.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Book not found")
			return
		}
		writeInternalError(w, "get book", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"book": toBookDTO(book)})
}

// HandleUpdate applies a partial update. Only the owner may update.
// PUT /api/books/{id}
func (h *BookHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var req updateBookRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	trimPtr(req.Title)
	trimPtr(req.Author)
	trimPtr(req.Genre)
	if !validateRequest(w, &req) {
		return
	}

	patch := domain.BookPatch{Title: req.Title, Author: req.Author, Genre: req.Genre}
	if req.PublishedYear != nil {
		year, ok := parseYear(w, *req.PublishedYear)
		if !ok {
			return
		}
		patch.PublishedYear = &year
	}

	book, err := h.books.Update(r.Context(), r.PathValue("id"), identity.UserID, patch)
	if err != nil {
		var dup *domain.DuplicateBookError
		if errors.As(err, &dup) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"message": "Book already exists",
				"id":      dup.ExistingID,
			})
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Book not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "Forbidden: You can only update your own books")
			return
		}
		writeInternalError(w, "update book", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book updated successfully",
		"book":    toBookDTO(book),
	})
}

// HandleDelete removes a book. Only the owner may delete.
// DELETE /api/books/{id}
func (h *BookHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	err := h.books.Delete(r.Context(), r.PathValue("id"), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Book not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "Forbidden: You can only delete your own books")
			return
		}
		writeInternalError(w, "delete book", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}

// queryInt reads a positive integer query parameter, falling back to def
// when it is absent, not a number, or not positive.
func queryInt(r *http.Request, key string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func parseYear(w http.ResponseWriter, v yearValue) (int, bool) {
	year, err := strconv.Atoi(string(v))
	if err != nil {
		writeValidationErrors(w, []FieldError{{Field: "publishedYear", Message: "publishedYear must be a whole number"}})
		return 0, false
	}
	return year, true
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
