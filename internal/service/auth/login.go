package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/alfred-backend/internal/auth"
	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// LoginInput holds the credentials submitted to /api/login.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is returned on successful login.
type LoginResult struct {
	User    *domain.User
	Session domain.Session
}

// Login checks the credentials and opens a new session.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, ErrUnknownUser)
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, ErrUnknownUser)
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := s.passwords.Verify(user.Password, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, ErrWrongPassword)
		}
		return nil, fmt.Errorf("auth.Login verify password: %w", err)
	}

	now := s.now().UTC()
	sess := domain.Session{
		ID:        s.newID(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.maxAge),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("auth.Login save session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID),
		slog.Time("expires_at", sess.ExpiresAt))

	return &LoginResult{User: user, Session: sess}, nil
}
