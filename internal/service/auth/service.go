// Package auth implements password login and cookie-session authentication.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/alfred-backend/internal/auth"
	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Login failures. Both wrap domain.ErrUnauthorized.
var (
	ErrUnknownUser   = errors.New("unknown user")
	ErrWrongPassword = errors.New("wrong password")
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// sessionStore defines the session storage interface needed by auth service.
type sessionStore interface {
	Save(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	sessions  sessionStore
	passwords auth.PasswordVerifier
	maxAge    time.Duration
	now       func() time.Time
	newID     func() string
}

// NewService creates a new auth service instance. Sessions expire maxAge
// after login regardless of activity.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionStore,
	passwords auth.PasswordVerifier,
	maxAge time.Duration,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		sessions:  sessions,
		passwords: passwords,
		maxAge:    maxAge,
		now:       time.Now,
		newID:     auth.NewSessionID,
	}
}
