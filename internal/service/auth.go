package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/msomdec/bookshelf/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user registration, login, and credential validation.
type AuthService struct {
	users      domain.UserRepository
	tokens     *TokenService
	bcryptCost int
	dummyHash  []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *TokenService, bcryptCost int) *AuthService {
	// Compared against when the email is unknown so both failure paths cost
	// one bcrypt comparison.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("bookshelf-placeholder"), bcryptCost)
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// Register creates a new user account and returns it.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate checks credentials. Unknown email and wrong password both
// return domain.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// Login authenticates and returns the user with a freshly issued token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// ValidateToken verifies a credential and returns the identity it carries.
func (s *AuthService) ValidateToken(token string) (*domain.Identity, error) {
	return s.tokens.Verify(token)
}

// TokenTTL returns how long issued credentials remain valid.
func (s *AuthService) TokenTTL() int {
	return int(s.tokens.TTL().Seconds())
}
