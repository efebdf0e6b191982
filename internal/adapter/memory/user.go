package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// UserRepo stores users with a unique username.
type UserRepo struct {
	mu         sync.RWMutex
	byID       map[int64]domain.User
	byUsername map[string]int64
	nextID     int64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:       make(map[int64]domain.User),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// GetByUsername matches the username exactly, without case folding.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

// Create stores u under the next ID. A taken username yields ErrAlreadyExists
// and consumes no ID.
func (r *UserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[u.Username]; taken {
		return nil, domain.ErrAlreadyExists
	}
	if u.Role == "" {
		u.Role = domain.DefaultRole
	}
	u.ID = r.nextID
	r.nextID++

	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	return &u, nil
}
