package memory

import (
	"context"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Store groups one repository per kind. Each call to NewStore yields an
// independent, empty instance.
type Store struct {
	Users    *UserRepo
	Tasks    *Repo[domain.Task]
	Events   *Repo[domain.Event]
	Messages *Repo[domain.Message]
	Bills    *Repo[domain.Bill]
}

func NewStore() *Store {
	return &Store{
		Users:    NewUserRepo(),
		Tasks:    NewRepo[domain.Task](),
		Events:   NewRepo[domain.Event](),
		Messages: NewRepo[domain.Message](),
		Bills:    NewRepo[domain.Bill](),
	}
}

// Ping always succeeds; the store lives in process memory.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}
