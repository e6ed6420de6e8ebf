// Package auth issues and verifies the signed bearer tokens that stand in
// for the client-side "current user" record.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quizmaster-service/internal/domain"
)

// Tokens signs and verifies HS256 user tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// NewTokensWithClock is test-only for deterministic expiry.
func NewTokensWithClock(secret string, ttl time.Duration, now func() time.Time) *Tokens {
	t := NewTokens(secret, ttl)
	t.now = now
	return t
}

// Issue returns a signed token carrying the user id and display name.
func (t *Tokens) Issue(user domain.User) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses the token and returns the user id it was issued for.
// Any parse, signature, or expiry failure maps to ErrNotAuthenticated.
func (t *Tokens) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return "", domain.ErrNotAuthenticated
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrNotAuthenticated
	}
	return sub, nil
}
