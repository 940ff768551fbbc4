package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/bookshelf/internal/domain"
)

// TokenTTL is how long an issued credential stays valid.
const TokenTTL = time.Hour

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed credentials carrying a user
// id and email. Tokens are stateless; nothing is recorded server side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with secret.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for issuing and verifying.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// TTL returns the credential lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue returns a signed token for the given user that expires after the TTL.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// identity it carries. Expired tokens yield domain.ErrTokenExpired; every
// other failure yields domain.ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (*domain.Identity, error) {
	if tokenString == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
