package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/service"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestTokenService(clock *fakeClock) *service.TokenService {
	return service.NewTokenService(testJWTSecret, service.TokenTTL).WithClock(clock.Now)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	tokens := newTestTokenService(clock)

	token, err := tokens.Issue("user-1", "jwt@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.UserID != "user-1" || identity.Email != "jwt@example.com" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	tokens := newTestTokenService(clock)

	token, err := tokens.Issue("user-1", "exp@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	clock.now = issuedAt.Add(59 * time.Minute)
	if _, err := tokens.Verify(token); err != nil {
		t.Fatalf("at T+59m: expected valid token, got %v", err)
	}

	clock.now = issuedAt.Add(61 * time.Minute)
	if _, err := tokens.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("at T+61m: expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_InvalidTokens(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tokens := newTestTokenService(clock)

	valid, err := tokens.Issue("user-1", "bad@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := service.NewTokenService("a-completely-different-secret-value!!", service.TokenTTL).WithClock(clock.Now)
	foreign, err := other.Issue("user-1", "bad@example.com")
	if err != nil {
		t.Fatalf("Issue foreign: %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-1",
		"exp": clock.now.Add(time.Hour).Unix(),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"malformed", "not-a-valid-jwt"},
		{"tampered", valid[:len(valid)-5] + "XXXXX"},
		{"wrong secret", foreign},
		{"alg none", unsigned},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tokens.Verify(tc.token)
			if !errors.Is(err, domain.ErrTokenInvalid) {
				t.Fatalf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestTokenService_MissingSubjectIsInvalid(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tokens := newTestTokenService(clock)

	token, err := tokens.Issue("", "nobody@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tokens.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
