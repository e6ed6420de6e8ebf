package app

import (
	"context"
	"sort"

	"quizmaster-service/internal/domain"
)

// ResultsService reads a user's slice of the ledger for the history and
// stats views. It never writes; appends happen on submission.
type ResultsService struct {
	ledger ResultLedger
}

func NewResultsService(ledger ResultLedger) *ResultsService {
	return &ResultsService{ledger: ledger}
}

// History returns the user's results, most recent first.
func (s *ResultsService) History(ctx context.Context, userID string) ([]domain.Result, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	results, err := s.ledger.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})
	return results, nil
}

// Stats sums and averages over the user's results. A user with no results
// gets all zeroes.
func (s *ResultsService) Stats(ctx context.Context, userID string) (domain.UserStats, error) {
	if userID == "" {
		return domain.UserStats{}, domain.ErrNotAuthenticated
	}
	results, err := s.ledger.ListByUser(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	stats := domain.UserStats{QuizzesTaken: len(results)}
	var totalScore float64
	for _, r := range results {
		stats.QuestionsAnswered += r.TotalQuestions
		totalScore += r.Score
	}
	if len(results) > 0 {
		stats.AverageScore = totalScore / float64(len(results))
	}
	return stats, nil
}
