package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Policy names accepted by NewPolicy.
const (
	PolicyDemo   = "demo"
	PolicyStrict = "strict"
)

// Policy decides which user a protected request acts as, given the user
// attached by its session (nil when there is none).
type Policy interface {
	Resolve(ctx context.Context, sessionUser *domain.User) (*domain.User, error)
}

// NewPolicy returns the policy for name.
func NewPolicy(name string, users userRepo, demoUsername string) (Policy, error) {
	switch name {
	case "", PolicyDemo:
		return DemoFallbackPolicy{users: users, username: demoUsername}, nil
	case PolicyStrict:
		return StrictPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown auth policy %q", name)
	}
}

// StrictPolicy rejects requests without a session user.
type StrictPolicy struct{}

func (StrictPolicy) Resolve(_ context.Context, u *domain.User) (*domain.User, error) {
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// DemoFallbackPolicy acts as the demo user when there is no session user.
type DemoFallbackPolicy struct {
	users    userRepo
	username string
}

func (p DemoFallbackPolicy) Resolve(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u != nil {
		return u, nil
	}
	demo, err := p.users.GetByUsername(ctx, p.username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve demo user: %w", err)
	}
	return demo, nil
}
