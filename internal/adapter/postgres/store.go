package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Store groups the PostgreSQL repositories sharing one pool.
type Store struct {
	Users    *UserRepo
	Tasks    *Repo[domain.Task]
	Events   *Repo[domain.Event]
	Messages *Repo[domain.Message]
	Bills    *Repo[domain.Bill]

	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:    NewUserRepo(pool),
		Tasks:    NewRepo(pool, TaskTable),
		Events:   NewRepo(pool, EventTable),
		Messages: NewRepo(pool, MessageTable),
		Bills:    NewRepo(pool, BillTable),
		pool:     pool,
	}
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close closes the underlying pool.
func (s *Store) Close() { s.pool.Close() }
