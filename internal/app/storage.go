package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/alfred-backend/internal/adapter/memory"
	"github.com/heartmarshall/alfred-backend/internal/adapter/postgres"
	redisadapter "github.com/heartmarshall/alfred-backend/internal/adapter/redis"
	"github.com/heartmarshall/alfred-backend/internal/config"
	"github.com/heartmarshall/alfred-backend/internal/domain"
	"github.com/heartmarshall/alfred-backend/internal/service/record"
)

type userStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// storage is the record backend selected by storage.driver.
type storage struct {
	users    userStore
	tasks    record.Repository[domain.Task]
	events   record.Repository[domain.Event]
	messages record.Repository[domain.Message]
	bills    record.Repository[domain.Bill]
	pinger   pinger
	close    func()
}

func openStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		s := memory.NewStore()
		logger.Info("using in-memory storage")
		return &storage{
			users: s.Users, tasks: s.Tasks, events: s.Events, messages: s.Messages, bills: s.Bills,
			pinger: s, close: s.Close,
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		s := postgres.NewStore(pool)
		logger.Info("using postgres storage", slog.Bool("auto_migrate", cfg.Database.AutoMigrate))
		return &storage{
			users: s.Users, tasks: s.Tasks, events: s.Events, messages: s.Messages, bills: s.Bills,
			pinger: s, close: s.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

type sessionStore interface {
	Save(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

func openSessions(ctx context.Context, cfg config.SessionConfig, logger *slog.Logger) (sessionStore, func(), error) {
	switch cfg.Store {
	case config.SessionStoreMemory:
		s := memory.NewSessionStore(logger, cfg.CheckPeriod)
		s.Start()
		return s, s.Stop, nil

	case config.SessionStoreRedis:
		client, err := redisadapter.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using redis session store", slog.String("addr", cfg.Redis.Addr))
		return redisadapter.NewSessionStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
