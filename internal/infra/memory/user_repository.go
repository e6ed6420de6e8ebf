package memory

import (
	"context"
	"strings"
	"sync"

	"quizmaster-service/internal/domain"
)

// UserRepository is an in-memory implementation of app.UserRepository with a
// case-insensitive uniqueness constraint on email.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := emailKey(user.Email)
	if _, taken := r.byEmail[key]; taken {
		return domain.User{}, domain.ErrEmailTaken
	}
	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	return user, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
