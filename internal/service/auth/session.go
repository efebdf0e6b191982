package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Logout ends the session. Unknown or empty IDs are not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "session closed", slog.String("session_id", sessionID))
	return nil
}

// Authenticate resolves a session ID to its user. Returns ErrUnauthorized if
// the session is unknown, expired, or its user no longer exists.
func (s *Service) Authenticate(ctx context.Context, sessionID string) (*domain.User, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Authenticate get session: %w", err)
	}
	if sess.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Authenticate get user: %w", err)
	}
	return user, nil
}
