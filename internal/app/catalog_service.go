package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"quizmaster-service/internal/domain"
)

// QuizStore persists user-authored quizzes.
type QuizStore interface {
	Insert(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error)
	Get(ctx context.Context, id string) (domain.Quiz, error)
	List(ctx context.Context) ([]domain.Quiz, error)
}

// QuestionDraft and QuizDraft carry authoring input before validation.
type QuestionDraft struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type QuizDraft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	Questions   []QuestionDraft `json:"questions"`
}

// The authoring form always offers four option slots.
const authoredOptionCount = 4

// CatalogService combines the fixed sample quizzes with user-authored ones.
// It implements the Catalog interface the attempt engine consumes.
type CatalogService struct {
	samples []domain.Quiz
	store   QuizStore
	now     func() time.Time
	newID   func() string
}

func NewCatalogService(samples []domain.Quiz, store QuizStore) *CatalogService {
	return &CatalogService{samples: samples, store: store, now: time.Now, newID: uuid.NewString}
}

// ListQuizzes returns the samples followed by every authored quiz.
func (s *CatalogService) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	authored, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	quizzes := make([]domain.Quiz, 0, len(s.samples)+len(authored))
	quizzes = append(quizzes, s.samples...)
	quizzes = append(quizzes, authored...)
	return quizzes, nil
}

// GetQuiz looks the id up in the samples first, then the store.
func (s *CatalogService) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	for _, quiz := range s.samples {
		if quiz.ID == quizID {
			return quiz, nil
		}
	}
	return s.store.Get(ctx, quizID)
}

// CreateQuiz validates and persists an authored quiz. Authoring requires at
// least one question so the attempt engine never sees a zero-question quiz,
// and each question carries exactly four non-empty options with an in-range
// correct index.
func (s *CatalogService) CreateQuiz(ctx context.Context, user domain.User, draft QuizDraft) (domain.Quiz, error) {
	if user.ID == "" {
		return domain.Quiz{}, domain.ErrNotAuthenticated
	}
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return domain.Quiz{}, domain.Invalid("quiz title is required")
	}
	if len(draft.Questions) == 0 {
		return domain.Quiz{}, domain.Invalid("a quiz must have at least one question")
	}

	questions := make([]domain.Question, 0, len(draft.Questions))
	for i, q := range draft.Questions {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			return domain.Quiz{}, domain.Invalidf("question %d needs text", i+1)
		}
		if len(q.Options) != authoredOptionCount {
			return domain.Quiz{}, domain.Invalidf("question %d needs exactly %d options", i+1, authoredOptionCount)
		}
		options := make([]string, len(q.Options))
		for j, opt := range q.Options {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				return domain.Quiz{}, domain.Invalidf("question %d is missing option %d", i+1, j+1)
			}
			options[j] = opt
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(options) {
			return domain.Quiz{}, domain.Invalidf("question %d has no such correct option", i+1)
		}
		questions = append(questions, domain.Question{
			ID:            i + 1,
			Text:          text,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	return s.store.Insert(ctx, domain.Quiz{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Category:    strings.TrimSpace(draft.Category),
		Difficulty:  strings.TrimSpace(draft.Difficulty),
		Questions:   questions,
		CreatedBy:   user.ID,
		CreatedAt:   s.now(),
	})
}
