package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
)

// QuizCache caches full quiz definitions in Redis (quiz:{id} JSON value)
// and falls back to the catalog source on a miss. Concurrent misses for the
// same quiz collapse into a single source load.
type QuizCache struct {
	client *redis.Client
	source app.Catalog
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuizCache(client *redis.Client, source app.Catalog, ttl time.Duration) *QuizCache {
	return &QuizCache{
		client: client,
		source: source,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *QuizCache) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	return c.source.ListQuizzes(ctx)
}

func (c *QuizCache) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	key := c.key(quizID)

	if quiz, ok := c.lookup(ctx, key); ok {
		return quiz, nil
	}

	result, err, _ := c.sf.Do(quizID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if quiz, ok := c.lookup(ctx, key); ok {
			return quiz, nil
		}

		quiz, err := c.source.GetQuiz(ctx, quizID)
		if err != nil {
			return domain.Quiz{}, err
		}

		if payload, err := json.Marshal(quiz); err == nil {
			// best-effort: a failed cache write only costs the next lookup
			_ = c.client.Set(ctx, key, payload, c.ttlWithJitter()).Err()
		}
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

func (c *QuizCache) lookup(ctx context.Context, key string) (domain.Quiz, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return domain.Quiz{}, false
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return domain.Quiz{}, false
	}
	return quiz, true
}

func (c *QuizCache) key(quizID string) string {
	return "quiz:" + quizID
}

func (c *QuizCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
