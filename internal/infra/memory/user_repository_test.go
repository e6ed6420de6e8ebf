package memory

import (
	"context"
	"testing"

	"quizmaster-service/internal/domain"
)

func TestUserRepositoryUniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	if _, err := repo.Create(ctx, domain.User{ID: "u1", Email: "alice@example.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Case differences do not dodge the constraint.
	if _, err := repo.Create(ctx, domain.User{ID: "u2", Email: "Alice@Example.com"}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	user, err := repo.GetByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("expected u1, got %+v", user)
	}

	if _, err := repo.GetByID(ctx, "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
