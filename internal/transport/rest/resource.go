package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// recordService defines the interface needed by ResourceHandler.
type recordService[E any] interface {
	Kind() domain.Kind
	List(ctx context.Context) ([]*E, error)
	Get(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, body domain.Patch) (*E, error)
	Update(ctx context.Context, id int64, p domain.Patch) (*E, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceHandler serves the five CRUD endpoints of one record kind.
type ResourceHandler[E any] struct {
	svc  recordService[E]
	msgs Messages
	log  *slog.Logger
}

// NewResourceHandler creates a ResourceHandler for the kind svc manages.
func NewResourceHandler[E any](svc recordService[E], logger *slog.Logger) *ResourceHandler[E] {
	kind := svc.Kind()
	return &ResourceHandler[E]{
		svc:  svc,
		msgs: MessagesFor(kind),
		log:  logger.With("handler", kind.Plural()),
	}
}

// Routes returns a router to be mounted at /api/{kind}.
func (h *ResourceHandler[E]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// List handles GET /api/{kind}.
func (h *ResourceHandler[E]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, h.msgs.ReadFailed)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/{kind}/{id}.
func (h *ResourceHandler[E]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, h.msgs.ReadFailed)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/{kind}.
func (h *ResourceHandler[E]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r)
	if err != nil {
		writeFieldErrors(w, []domain.FieldError{{Field: "body", Message: "must be a JSON object"}})
		return
	}

	item, err := h.svc.Create(r.Context(), body)
	if err != nil {
		h.handleError(w, r, err, h.msgs.CreateFailed)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PATCH /api/{kind}/{id}.
func (h *ResourceHandler[E]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	patch, err := decodeObject(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err, h.msgs.UpdateFailed)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/{kind}/{id}.
func (h *ResourceHandler[E]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err, h.msgs.DeleteFailed)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// parseID reads the {id} URL parameter. Non-numeric IDs are reported as not
// found, the same as unknown numeric ones.
func (h *ResourceHandler[E]) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, h.msgs.NotFound)
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[E]) handleError(w http.ResponseWriter, r *http.Request, err error, failed string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeFieldErrors(w, ve.Errors)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, h.msgs.NotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Não autenticado")
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, failed)
	}
}
