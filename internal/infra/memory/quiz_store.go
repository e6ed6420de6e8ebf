package memory

import (
	"context"
	"sync"

	"quizmaster-service/internal/domain"
)

// QuizStore keeps authored quizzes in insertion order.
type QuizStore struct {
	mu      sync.RWMutex
	quizzes []domain.Quiz
	byID    map[string]int
}

func NewQuizStore() *QuizStore {
	return &QuizStore{byID: make(map[string]int)}
}

func (s *QuizStore) Insert(_ context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[quiz.ID] = len(s.quizzes)
	s.quizzes = append(s.quizzes, quiz)
	return quiz, nil
}

func (s *QuizStore) Get(_ context.Context, id string) (domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return s.quizzes[i], nil
}

func (s *QuizStore) List(_ context.Context) ([]domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Quiz, len(s.quizzes))
	copy(out, s.quizzes)
	return out, nil
}
