package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msomdec/bookshelf/internal/handler"
)

func TestHandleHome(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "home@example.com")

	srv := httptest.NewServer(env.mux(nil))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "home@example.com") {
		t.Fatal("expected signed-in email on the page")
	}
	if !strings.Contains(string(body), "/api/books/search") {
		t.Fatal("expected route listing on the page")
	}
}

func TestHandleHomeNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	w := httptest.NewRecorder()

	handler.HandleHome(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	srv := httptest.NewServer(env.mux(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/unknown")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
