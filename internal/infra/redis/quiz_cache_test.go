package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
	"quizmaster-service/internal/infra/memory"
)

type countingCatalog struct {
	app.Catalog
	calls int
}

func (c *countingCatalog) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	c.calls++
	return c.Catalog.GetQuiz(ctx, quizID)
}

func TestQuizCacheCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := memory.NewQuizStore()
	_, _ = store.Insert(ctx, sampleQuiz())
	source := &countingCatalog{Catalog: app.NewCatalogService(nil, store)}
	cache := NewQuizCache(newClient(mr), source, time.Minute)

	quiz, err := cache.GetQuiz(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if quiz.Title != "Sample" || len(quiz.Questions) != 1 {
		t.Fatalf("unexpected quiz %+v", quiz)
	}
	if source.calls != 1 {
		t.Fatalf("expected source called once, got %d", source.calls)
	}
	if !mr.Exists("quiz:quiz-1") {
		t.Fatalf("expected cached redis key")
	}

	// Second call should hit cache, source not incremented.
	cached, err := cache.GetQuiz(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("get quiz 2: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected cache hit, source calls=%d", source.calls)
	}
	if cached.Questions[0].CorrectAnswer != 1 {
		t.Fatalf("cached quiz lost content: %+v", cached)
	}
}
