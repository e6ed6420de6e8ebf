package memory

import (
	"context"
	"sync"

	"quizmaster-service/internal/domain"
)

// ResultStore is an append-only in-memory ledger of results.
type ResultStore struct {
	mu      sync.RWMutex
	results []domain.Result
}

func NewResultStore() *ResultStore {
	return &ResultStore{}
}

func (s *ResultStore) Append(_ context.Context, result domain.Result) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return result, nil
}

func (s *ResultStore) ListByUser(_ context.Context, userID string) ([]domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Result
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
