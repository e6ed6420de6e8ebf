package memory

import (
	"context"
	"testing"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
)

func TestAttemptStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewAttemptStore()

	attempt := &app.Attempt{
		ID:      "a1",
		UserID:  "u1",
		Answers: make([]domain.Answer, 3),
	}
	if err := store.Save(ctx, attempt); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Get(ctx, "a1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.ID != "a1" || len(loaded.Answers) != 3 {
		t.Fatalf("unexpected attempt %+v", loaded)
	}

	// Mutating the loaded copy must not touch the stored one.
	loaded.Answers[0] = domain.Chosen(2)
	again, _ := store.Get(ctx, "a1")
	if again.Answers[0].Answered {
		t.Fatalf("store aliased caller state: %+v", again.Answers[0])
	}

	if err := store.Delete(ctx, "a1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "a1"); err != domain.ErrAttemptNotFound {
		t.Fatalf("expected ErrAttemptNotFound, got %v", err)
	}
}
