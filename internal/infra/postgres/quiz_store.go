package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quizmaster-service/internal/domain"
)

// QuizStore persists authored quizzes as JSONB, one row per quiz.
type QuizStore struct {
	pool *pgxpool.Pool
}

func NewQuizStore(pool *pgxpool.Pool) *QuizStore {
	return &QuizStore{pool: pool}
}

func (s *QuizStore) Insert(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	data, err := json.Marshal(quiz)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("marshal quiz: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO quizzes (id, created_by, created_at, data) VALUES ($1, $2, $3, $4)`,
		quiz.ID, quiz.CreatedBy, quiz.CreatedAt, data)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("insert quiz: %w", err)
	}
	return quiz, nil
}

func (s *QuizStore) Get(ctx context.Context, id string) (domain.Quiz, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM quizzes WHERE id = $1`, id).Scan(&raw)
	if err == pgx.ErrNoRows {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: %w", err)
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal quiz: %w", err)
	}
	return quiz, nil
}

func (s *QuizStore) List(ctx context.Context) ([]domain.Quiz, error) {
	rows, err := s.pool.Query(ctx, `SELECT data FROM quizzes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []domain.Quiz
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		var quiz domain.Quiz
		if err := json.Unmarshal(raw, &quiz); err != nil {
			return nil, fmt.Errorf("unmarshal quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}
