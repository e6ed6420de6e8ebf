package app_test

import (
	"context"
	"errors"
	"testing"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
	"quizmaster-service/internal/infra/memory"
)

func validDraft() app.QuizDraft {
	return app.QuizDraft{
		Title:       "My Quiz",
		Description: "hand made",
		Questions: []app.QuestionDraft{
			{
				Text:          "Pick C",
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: 2,
			},
		},
	}
}

func TestCreateQuizAssignsIDsAndAuthor(t *testing.T) {
	ctx := context.Background()
	service := app.NewCatalogService(nil, memory.NewQuizStore())

	quiz, err := service.CreateQuiz(ctx, testUser, validDraft())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if quiz.ID == "" || quiz.CreatedBy != testUser.ID {
		t.Fatalf("expected id and author, got %+v", quiz)
	}
	if quiz.Questions[0].ID != 1 {
		t.Fatalf("expected 1-based question ids, got %d", quiz.Questions[0].ID)
	}

	fetched, err := service.GetQuiz(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Title != "My Quiz" {
		t.Fatalf("expected stored quiz, got %+v", fetched)
	}
}

func TestCreateQuizRequiresAuth(t *testing.T) {
	service := app.NewCatalogService(nil, memory.NewQuizStore())

	_, err := service.CreateQuiz(context.Background(), domain.User{}, validDraft())
	if err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	ctx := context.Background()
	service := app.NewCatalogService(nil, memory.NewQuizStore())

	mutations := []struct {
		name   string
		mutate func(*app.QuizDraft)
	}{
		{"empty title", func(d *app.QuizDraft) { d.Title = "  " }},
		{"no questions", func(d *app.QuizDraft) { d.Questions = nil }},
		{"empty question text", func(d *app.QuizDraft) { d.Questions[0].Text = "" }},
		{"too few options", func(d *app.QuizDraft) { d.Questions[0].Options = []string{"A", "B"} }},
		{"too many options", func(d *app.QuizDraft) { d.Questions[0].Options = []string{"A", "B", "C", "D", "E"} }},
		{"blank option", func(d *app.QuizDraft) { d.Questions[0].Options[3] = "   " }},
		{"correct index negative", func(d *app.QuizDraft) { d.Questions[0].CorrectAnswer = -1 }},
		{"correct index too large", func(d *app.QuizDraft) { d.Questions[0].CorrectAnswer = 4 }},
	}
	for _, tc := range mutations {
		draft := validDraft()
		tc.mutate(&draft)
		if _, err := service.CreateQuiz(ctx, testUser, draft); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestListQuizzesCombinesSamplesAndAuthored(t *testing.T) {
	ctx := context.Background()
	samples := []domain.Quiz{{ID: "sample-1", Title: "Sample", Questions: fiveQuestionQuiz().Questions}}
	service := app.NewCatalogService(samples, memory.NewQuizStore())

	if _, err := service.CreateQuiz(ctx, testUser, validDraft()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	quizzes, err := service.ListQuizzes(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}
	if quizzes[0].ID != "sample-1" {
		t.Fatalf("expected samples first, got %+v", quizzes[0])
	}

	// Sample ids resolve without touching the store.
	if _, err := service.GetQuiz(ctx, "sample-1"); err != nil {
		t.Fatalf("get sample failed: %v", err)
	}
}
