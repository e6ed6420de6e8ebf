package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
)

// AttemptStore keeps in-progress attempts as JSON values under
// attempt:{id}. The TTL bounds how long an abandoned attempt lingers;
// expiry behaves exactly like an explicit abandon since nothing reaches
// the ledger before submission.
type AttemptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAttemptStore(client *redis.Client, ttl time.Duration) *AttemptStore {
	return &AttemptStore{client: client, ttl: ttl}
}

func (s *AttemptStore) Save(ctx context.Context, attempt *app.Attempt) error {
	payload, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("marshal attempt: %w", err)
	}
	if err := s.client.Set(ctx, s.key(attempt.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (s *AttemptStore) Get(ctx context.Context, id string) (*app.Attempt, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrAttemptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	var attempt app.Attempt
	if err := json.Unmarshal(raw, &attempt); err != nil {
		return nil, fmt.Errorf("unmarshal attempt: %w", err)
	}
	return &attempt, nil
}

func (s *AttemptStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete attempt: %w", err)
	}
	return nil
}

func (s *AttemptStore) key(id string) string {
	return "attempt:" + id
}
