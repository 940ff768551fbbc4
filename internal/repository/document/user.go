package document

import (
	"context"

	"github.com/msomdec/bookshelf/internal/domain"
)

// UserRepository implements domain.UserRepository over the users collection.
type UserRepository struct {
	users *Collection[domain.User]
}

// NewUserRepository creates a UserRepository backed by store.
func NewUserRepository(store domain.CollectionStore) *UserRepository {
	return &UserRepository{users: NewCollection[domain.User](store, domain.CollectionUsers)}
}

// Create appends user, rejecting an email that is already registered.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.users.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		for _, u := range users {
			if u.Email == user.Email {
				return nil, domain.ErrDuplicateEmail
			}
		}
		return append(users, *user), nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(ctx, func(u *domain.User) bool { return u.ID == id })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(ctx, func(u *domain.User) bool { return u.Email == email })
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.users.Load(ctx)
}

func (r *UserRepository) find(ctx context.Context, match func(*domain.User) bool) (*domain.User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(&users[i]) {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
