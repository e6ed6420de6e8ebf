package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"quizmaster-service/internal/domain"
)

// ResultStore is the Postgres-backed ledger. Rows are append-only; the
// record itself lives in a JSONB column with the user id and date lifted
// out for querying.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

func (s *ResultStore) Append(ctx context.Context, result domain.Result) (domain.Result, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return domain.Result{}, fmt.Errorf("marshal result: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO results (id, user_id, taken_at, data) VALUES ($1, $2, $3, $4)`,
		result.ID, result.UserID, result.Date, data)
	if err != nil {
		return domain.Result{}, fmt.Errorf("append result: %w", err)
	}
	return result, nil
}

func (s *ResultStore) ListByUser(ctx context.Context, userID string) ([]domain.Result, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT data FROM results WHERE user_id = $1 ORDER BY taken_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		var result domain.Result
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
