// Package memory implements process-local storage for all record kinds.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// Repo is an in-memory repository for one entity kind. Identifiers are
// assigned from 1 and never reused, even after deletion.
type Repo[E domain.Entity[E]] struct {
	mu     sync.RWMutex
	items  map[int64]E
	nextID int64
}

// NewRepo creates an empty repository.
func NewRepo[E domain.Entity[E]]() *Repo[E] {
	return &Repo[E]{
		items:  make(map[int64]E),
		nextID: 1,
	}
}

// List returns every record owned by ownerID in ascending ID order.
func (r *Repo[E]) List(_ context.Context, ownerID int64) ([]*E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*E, 0)
	for _, e := range r.items {
		if e.OwnerID() == ownerID {
			e := e
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return (*out[i]).EntityID() < (*out[j]).EntityID()
	})
	return out, nil
}

// GetByID returns a copy of the record with the given ID.
func (r *Repo[E]) GetByID(_ context.Context, id int64) (*E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

// Create assigns the next ID to e and stores it.
func (r *Repo[E]) Create(_ context.Context, e E) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	stored := e.WithID(id)
	r.items[id] = stored
	return &stored, nil
}

// Update shallow-merges p into the stored record. A missing ID never creates
// a record.
func (r *Repo[E]) Update(_ context.Context, id int64, p domain.Patch) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	next, err := domain.ApplyPatch(cur, p)
	if err != nil {
		return nil, fmt.Errorf("apply patch %d: %w", id, err)
	}
	r.items[id] = next
	return &next, nil
}

// Delete removes the record with the given ID.
func (r *Repo[E]) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Len reports the number of stored records.
func (r *Repo[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
