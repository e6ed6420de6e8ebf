package auth

import (
	"testing"
	"time"

	"quizmaster-service/internal/domain"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	token, err := tokens.Issue(domain.User{ID: "u1", Name: "Alice"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("expected u1, got %q", userID)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokensWithClock("secret", time.Minute, func() time.Time { return issued })

	token, err := issuer.Issue(domain.User{ID: "u1", Name: "Alice"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	later := NewTokensWithClock("secret", time.Minute, func() time.Time { return issued.Add(2 * time.Minute) })
	if _, err := later.Verify(token); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected expired token rejection, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	token, _ := tokens.Issue(domain.User{ID: "u1"})

	other := NewTokens("different", time.Hour)
	if _, err := other.Verify(token); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected signature rejection, got %v", err)
	}
}
