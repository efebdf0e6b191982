package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/alfred-backend/internal/domain"
	"github.com/heartmarshall/alfred-backend/internal/service/auth"
	"github.com/heartmarshall/alfred-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// cookieSigner turns session IDs into cookie values.
type cookieSigner interface {
	Sign(sessionID string, expiresAt time.Time) (string, error)
}

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	Name   string
	Secure bool
}

// AuthHandler serves login, logout and the current-user endpoint.
type AuthHandler struct {
	svc    authService
	signer cookieSigner
	cookie CookieOptions
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, signer cookieSigner, cookie CookieOptions, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		signer: signer,
		cookie: cookie,
		log:    logger.With("handler", "auth"),
	}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	value, err := h.signer.Sign(result.Session.ID, result.Session.ExpiresAt)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  result.Session.ExpiresAt,
		MaxAge:   int(time.Until(result.Session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, result.User)
}

// Logout handles POST /api/logout. It always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), ctxutil.SessionIDFromCtx(r.Context())); err != nil {
		h.log.WarnContext(r.Context(), "logout failed", slog.String("error", err.Error()))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Me handles GET /api/me. It runs behind the auth policy, which guarantees a
// user in the context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := ctxutil.UserFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Não autenticado")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrUnknownUser):
		writeError(w, http.StatusUnauthorized, "Usuário incorreto.")
	case errors.Is(err, auth.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, "Senha incorreta.")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Não autenticado")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
