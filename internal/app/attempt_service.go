package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"quizmaster-service/internal/domain"
)

// AttemptStore abstracts how in-progress attempts are kept (in-memory, Redis).
type AttemptStore interface {
	Save(ctx context.Context, attempt *Attempt) error
	Get(ctx context.Context, id string) (*Attempt, error)
	Delete(ctx context.Context, id string) error
}

// Catalog supplies quiz definitions (read-only to the attempt engine).
type Catalog interface {
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// ResultLedger is the append-only store of scored results.
type ResultLedger interface {
	Append(ctx context.Context, result domain.Result) (domain.Result, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Result, error)
}

// AttemptService drives one user's attempt at one quiz from start to scored
// result. It does not authenticate; callers resolve the user upstream and the
// service only enforces that one was resolved.
type AttemptService struct {
	attempts AttemptStore
	catalog  Catalog
	results  ResultLedger
	now      func() time.Time
	newID    func() string
}

func NewAttemptService(attempts AttemptStore, catalog Catalog, results ResultLedger) *AttemptService {
	return &AttemptService{
		attempts: attempts,
		catalog:  catalog,
		results:  results,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// NewAttemptServiceWithClock is test-only for deterministic timestamps and ids.
func NewAttemptServiceWithClock(attempts AttemptStore, catalog Catalog, results ResultLedger, now func() time.Time, newID func() string) *AttemptService {
	s := NewAttemptService(attempts, catalog, results)
	s.now = now
	s.newID = newID
	return s
}

// Start creates a fresh attempt for the user: cursor at the first question,
// every answer unanswered. Restarting the same quiz (a retake) goes through
// here too and shares nothing with prior attempts.
func (s *AttemptService) Start(ctx context.Context, quizID string, user domain.User) (*Attempt, error) {
	if user.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	attempt, err := newAttempt(s.newID(), quiz, user.ID, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SelectAnswer records an option for the attempt's current question.
func (s *AttemptService) SelectAnswer(ctx context.Context, attemptID, userID string, option int) (*Attempt, error) {
	attempt, err := s.load(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if err := attempt.SelectAnswer(option); err != nil {
		return nil, err
	}
	if err := s.attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Advance moves the attempt cursor.
func (s *AttemptService) Advance(ctx context.Context, attemptID, userID string, dir Direction) (*Attempt, error) {
	attempt, err := s.load(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if err := attempt.Advance(dir); err != nil {
		return nil, err
	}
	if err := s.attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Submit scores whatever the answers currently hold, from any question index,
// appends the Result to the ledger, and discards the attempt. Unanswered
// questions simply count as incorrect; submitting with nothing selected
// yields a score of zero, never an error.
func (s *AttemptService) Submit(ctx context.Context, attemptID string, user domain.User) (domain.Result, error) {
	attempt, err := s.load(ctx, attemptID, user.ID)
	if err != nil {
		return domain.Result{}, err
	}
	result := attempt.result(s.newID(), user, s.now())
	stored, err := s.results.Append(ctx, result)
	if err != nil {
		return domain.Result{}, err
	}
	// Submit is terminal; the attempt id must stop resolving.
	if err := s.attempts.Delete(ctx, attemptID); err != nil {
		return domain.Result{}, err
	}
	return stored, nil
}

// Abandon drops an in-progress attempt without touching the ledger. Always
// succeeds, even when the attempt is already gone.
func (s *AttemptService) Abandon(ctx context.Context, attemptID, userID string) error {
	if _, err := s.load(ctx, attemptID, userID); err != nil {
		if err == domain.ErrAttemptNotFound {
			return nil
		}
		return err
	}
	return s.attempts.Delete(ctx, attemptID)
}

// load fetches an attempt scoped to its owner. A foreign attempt id behaves
// exactly like a missing one.
func (s *AttemptService) load(ctx context.Context, attemptID, userID string) (*Attempt, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	attempt, err := s.attempts.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, domain.ErrAttemptNotFound
	}
	return attempt, nil
}
