package ctxutil

import (
	"context"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	sessionIDKey ctxKey = "session_id"
	requestIDKey ctxKey = "request_id"
)

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx extracts the authenticated user from the context.
// Returns nil and false if the value is missing or nil.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// UserIDFromCtx returns the ID of the authenticated user.
// Returns 0 and false if no user is attached.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	u, ok := UserFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return u.ID, true
}

// WithSessionID stores the verified session ID in the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the session ID from the context.
// Returns an empty string if absent.
func SessionIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
