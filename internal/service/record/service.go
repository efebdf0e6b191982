// Package record implements the create/read/update/delete operations shared
// by every owned record kind.
package record

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/alfred-backend/internal/domain"
	"github.com/heartmarshall/alfred-backend/pkg/ctxutil"
)

// Repository is the storage contract for one kind.
type Repository[E any] interface {
	List(ctx context.Context, ownerID int64) ([]*E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, e E) (*E, error)
	Update(ctx context.Context, id int64, p domain.Patch) (*E, error)
	Delete(ctx context.Context, id int64) error
}

// Options toggles the stricter contracts. Both are off by default.
type Options struct {
	// StrictPatch strips server-owned fields from patches and re-validates
	// the merged record before storing it.
	StrictPatch bool
	// EnforceOwnership reports records owned by another user as not found.
	EnforceOwnership bool
}

// Service provides record operations for one kind.
type Service[E domain.Entity[E]] struct {
	repo   Repository[E]
	schema Schema[E]
	opts   Options
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new record service for the kind described by schema.
func NewService[E domain.Entity[E]](
	log *slog.Logger,
	repo Repository[E],
	schema Schema[E],
	opts Options,
) *Service[E] {
	return &Service[E]{
		repo:   repo,
		schema: schema,
		opts:   opts,
		log:    log.With("service", schema.Kind.Plural()),
		now:    time.Now,
	}
}

// Kind returns the kind this service manages.
func (s *Service[E]) Kind() domain.Kind { return s.schema.Kind }

// List returns every record owned by the current user.
func (s *Service[E]) List(ctx context.Context) ([]*E, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.schema.Kind.Plural(), err)
	}
	return items, nil
}

// Get returns a single record.
func (s *Service[E]) Get(ctx context.Context, id int64) (*E, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", s.schema.Kind, id, err)
	}
	if s.opts.EnforceOwnership && (*item).OwnerID() != userID {
		return nil, fmt.Errorf("get %s %d: %w", s.schema.Kind, id, domain.ErrNotFound)
	}
	return item, nil
}

// Create validates body against the kind's schema with the current user as
// owner, and stores the result.
func (s *Service[E]) Create(ctx context.Context, body domain.Patch) (*E, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	fields := body.Without()
	fields["userId"] = json.RawMessage(fmt.Sprintf("%d", userID))

	e, err := s.schema.Parse(fields, s.now().UTC())
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.schema.Kind, err)
	}

	s.log.InfoContext(ctx, s.schema.Kind.String()+" created",
		slog.Int64("user_id", userID),
		slog.Int64("id", (*created).EntityID()),
	)

	return created, nil
}

// Update merges p into the stored record.
func (s *Service[E]) Update(ctx context.Context, id int64, p domain.Patch) (*E, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.opts.EnforceOwnership || s.opts.StrictPatch {
		cur, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if s.opts.StrictPatch {
			p = p.Without(s.schema.ServerFields...)
			if err := s.validateMerged(*cur, p); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("update %s %d: %w", s.schema.Kind, id, err)
	}

	s.log.InfoContext(ctx, s.schema.Kind.String()+" updated", slog.Int64("id", id))

	return updated, nil
}

// validateMerged runs the kind's schema over cur with p laid on top.
func (s *Service[E]) validateMerged(cur E, p domain.Patch) error {
	raw, err := json.Marshal(cur)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.schema.Kind, err)
	}
	merged := domain.Patch{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return fmt.Errorf("unmarshal %s: %w", s.schema.Kind, err)
	}
	for k, v := range p {
		merged[k] = v
	}
	_, err = s.schema.Parse(merged, s.now().UTC())
	return err
}

// Delete removes a record.
func (s *Service[E]) Delete(ctx context.Context, id int64) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if s.opts.EnforceOwnership {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", s.schema.Kind, id, err)
	}

	s.log.InfoContext(ctx, s.schema.Kind.String()+" deleted", slog.Int64("id", id))

	return nil
}
