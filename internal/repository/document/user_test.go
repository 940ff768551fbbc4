package document_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/repository/document"
	"github.com/msomdec/bookshelf/internal/repository/memory"
)

var _ domain.UserRepository = (*document.UserRepository)(nil)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := document.NewUserRepository(memory.New())
	ctx := context.Background()

	user := &domain.User{ID: "u1", Email: "test@example.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != "test@example.com" {
		t.Fatalf("expected email test@example.com, got %q", byID.Email)
	}

	byEmail, err := repo.GetByEmail(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != "u1" {
		t.Fatalf("expected id u1, got %q", byEmail.ID)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := document.NewUserRepository(memory.New())
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{ID: "u1", Email: "dup@example.com"}); err != nil {
		t.Fatalf("Create user1: %v", err)
	}
	err := repo.Create(ctx, &domain.User{ID: "u2", Email: "dup@example.com"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	users, _ := repo.List(ctx)
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	repo := document.NewUserRepository(memory.New())
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{ID: "u1", Email: "case@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, &domain.User{ID: "u2", Email: "CASE@example.com"}); err != nil {
		t.Fatalf("Create with different case: %v", err)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := document.NewUserRepository(memory.New())
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByEmail: expected ErrNotFound, got %v", err)
	}
}
