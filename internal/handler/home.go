package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/bookshelf/internal/view"
)

// HandleHome renders the HTML index of the API.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		HandleNotFound(w, r)
		return
	}

	email := ""
	if identity := IdentityFromContext(r.Context()); identity != nil {
		email = identity.Email
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.HomePage(email, apiRoutes).Render(r.Context(), w); err != nil {
		slog.Error("render home", "error", err)
	}
}

// HandleNotFound answers every unmatched route.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}
