package memory

import (
	"context"
	"sync"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
)

// AttemptStore is an in-memory implementation of app.AttemptStore. Attempts
// are stored as deep copies so callers never share answer slices with the
// store, matching the isolation the Redis store gets for free from JSON.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts map[string]*app.Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{attempts: make(map[string]*app.Attempt)}
}

func (s *AttemptStore) Save(_ context.Context, attempt *app.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[attempt.ID] = cloneAttempt(attempt)
	return nil
}

func (s *AttemptStore) Get(_ context.Context, id string) (*app.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attempt, ok := s.attempts[id]
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	return cloneAttempt(attempt), nil
}

func (s *AttemptStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, id)
	return nil
}

func cloneAttempt(attempt *app.Attempt) *app.Attempt {
	clone := *attempt
	clone.Answers = make([]domain.Answer, len(attempt.Answers))
	copy(clone.Answers, attempt.Answers)
	return &clone
}
