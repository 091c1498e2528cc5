// Package memory provides in-memory repository implementations used by tests
// and local experiments in place of Postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"wardrobe-api/internal/domain/entity"
	"wardrobe-api/internal/domain/repository"
)

type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]entity.User

	// Calls counts store operations, letting tests assert that validation
	// short-circuits before the store is reached.
	Calls int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1, users: make(map[int64]entity.User)}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	u.ID = r.nextID
	r.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++

	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Count reports the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

var _ repository.UserRepository = (*UserRepository)(nil)
