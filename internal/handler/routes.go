package handler

import (
	"net/http"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/service"
	"github.com/msomdec/bookshelf/internal/view"
)

// apiRoutes is listed on the index page.
var apiRoutes = []view.Route{
	{Method: "POST", Path: "/api/auth/register", Summary: "Register a new user", Auth: false},
	{Method: "POST", Path: "/api/auth/login", Summary: "Log in and receive the token cookie", Auth: false},
	{Method: "POST", Path: "/api/auth/logout", Summary: "Clear the token cookie", Auth: true},
	{Method: "POST", Path: "/api/books", Summary: "Create a book", Auth: true},
	{Method: "GET", Path: "/api/books?page=&limit=", Summary: "List books, paginated", Auth: true},
	{Method: "GET", Path: "/api/books/search?genre=", Summary: "Search books by genre", Auth: true},
	{Method: "GET", Path: "/api/books/{id}", Summary: "Get a book", Auth: true},
	{Method: "PUT", Path: "/api/books/{id}", Summary: "Update a book you own", Auth: true},
	{Method: "DELETE", Path: "/api/books/{id}", Summary: "Delete a book you own", Auth: true},
}

// RegisterRoutes sets up all HTTP routes on the given mux. limiter may be
// nil to disable rate limiting of the account endpoints.
func RegisterRoutes(mux *http.ServeMux, store domain.CollectionStore, auth *service.AuthService, books *service.BookService, limiter *service.RateLimiter, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	bookHandler := NewBookHandler(books)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}
	throttled := func(h http.HandlerFunc) http.Handler {
		return RateLimit(limiter, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz(store))
	mux.Handle("GET /{$}", OptionalAuth(auth, http.HandlerFunc(HandleHome)))

	mux.Handle("POST /api/auth/register", throttled(authHandler.HandleRegister))
	mux.Handle("POST /api/auth/login", throttled(authHandler.HandleLogin))
	mux.Handle("POST /api/auth/logout", protected(authHandler.HandleLogout))

	mux.Handle("POST /api/books", protected(bookHandler.HandleCreate))
	mux.Handle("GET /api/books", protected(bookHandler.HandleList))
	mux.Handle("GET /api/books/search", protected(bookHandler.HandleSearch))
	mux.Handle("GET /api/books/{id}", protected(bookHandler.HandleGet))
	mux.Handle("PUT /api/books/{id}", protected(bookHandler.HandleUpdate))
	mux.Handle("DELETE /api/books/{id}", protected(bookHandler.HandleDelete))

	mux.HandleFunc("/", HandleNotFound)
}
