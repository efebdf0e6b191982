package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/alfred-backend/internal/domain"
	"github.com/heartmarshall/alfred-backend/pkg/ctxutil"
)

type cookieVerifier interface {
	Verify(value string) (string, error)
}

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*domain.User, error)
}

type userPolicy interface {
	Resolve(ctx context.Context, sessionUser *domain.User) (*domain.User, error)
}

// Session attaches the session ID and its user to the request context when
// the request carries a valid session cookie. Requests without one, or with
// a stale or forged one, continue anonymously.
func Session(logger *slog.Logger, cookieName string, cookies cookieVerifier, sessions sessionAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, err := cookies.Verify(c.Value)
			if err != nil {
				logger.DebugContext(r.Context(), "session cookie rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithSessionID(r.Context(), sessionID)
			user, err := sessions.Authenticate(ctx, sessionID)
			switch {
			case err == nil:
				ctx = ctxutil.WithUser(ctx, user)
			case errors.Is(err, domain.ErrUnauthorized):
			default:
				logger.ErrorContext(ctx, "session lookup failed", slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser runs the authentication policy for protected routes. The
// resolved user replaces the session user in the context; unresolved
// requests get 401.
func RequireUser(logger *slog.Logger, policy userPolicy) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionUser, _ := ctxutil.UserFromCtx(r.Context())

			user, err := policy.Resolve(r.Context(), sessionUser)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "Não autenticado")
					return
				}
				logger.ErrorContext(r.Context(), "auth policy failed", slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUser(r.Context(), user)))
		})
	}
}
