// Package memory provides the in-memory session store. Sessions exist only
// for the lifetime of the process; there is no persistence behind it.
package memory

import (
	"context"
	"sync"
	"time"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/pkg/errs"
)

// SessionRepository implements ports.SessionRepository on a mutex-guarded
// map. The store lock is held for the whole of an Update closure, so each
// command's read-validate-apply sequence is atomic per store.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewSessionRepository creates an empty in-memory session store.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*session.Session),
	}
}

// Add stores a new session under its identifier.
func (r *SessionRepository) Add(_ context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, exists := r.sessions[key]; exists {
		return errs.NewValueIsInvalidError("session id is already in use")
	}
	r.sessions[key] = aggregate
	return nil
}

// Get retrieves a session by its identifier.
func (r *SessionRepository) Get(_ context.Context, id kernel.UUID) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return s, nil
}

// Update runs fn against the session while holding the write lock. An error
// from fn is returned as-is; a successful update marks the session active.
func (r *SessionRepository) Update(_ context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id.String()]
	if !ok {
		return errs.NewObjectNotFoundError("session", id.String())
	}

	if err := fn(s); err != nil {
		return err
	}
	s.Touch(time.Now())
	return nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (r *SessionRepository) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id.String())
	return nil
}

// DeleteIdle removes every session idle for at least ttl and returns how many
// were evicted.
func (r *SessionRepository) DeleteIdle(_ context.Context, now time.Time, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for key, s := range r.sessions {
		if s.IsIdle(now, ttl) {
			delete(r.sessions, key)
			evicted++
		}
	}
	return evicted, nil
}

// Len returns the number of stored sessions.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
