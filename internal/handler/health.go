package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/bookshelf/internal/domain"
)

// HandleHealthz reports whether the storage backend answers. It responds
// 200 {"status":"ok"} or 503 {"status":"unavailable"}.
func HandleHealthz(store domain.CollectionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := store.Load(r.Context(), domain.CollectionUsers); err != nil {
			slog.Error("health check", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
