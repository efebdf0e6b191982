package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/alfred-backend/internal/domain"
)

// SessionStore keeps sessions in a map and drops expired ones on a fixed
// period.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	log      *slog.Logger
	period   time.Duration
	now      func() time.Time
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
	started  bool
}

// NewSessionStore creates a store that prunes every checkPeriod once Start is
// called.
func NewSessionStore(log *slog.Logger, checkPeriod time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
		log:      log.With("store", "session"),
		period:   checkPeriod,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the pruning goroutine. Later calls are no-ops.
func (s *SessionStore) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true
	go s.pruneLoop()
}

// Stop terminates the pruning goroutine and waits for it to exit. Safe to
// call more than once, and without a prior Start.
func (s *SessionStore) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	if started {
		<-s.done
	}
}

func (s *SessionStore) pruneLoop() {
	defer close(s.done)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Prune(); n > 0 {
				s.log.Debug("expired sessions pruned", slog.Int("count", n))
			}
		case <-s.stop:
			return
		}
	}
}

// Prune removes expired sessions and reports how many were dropped.
func (s *SessionStore) Prune() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *SessionStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = sess
	return nil
}

// Get returns ErrNotFound for unknown and expired sessions alike.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if sess.IsExpired(s.now()) {
		delete(s.sessions, id)
		return nil, domain.ErrNotFound
	}
	return &sess, nil
}

// Delete is idempotent.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Ping(context.Context) error { return nil }
