package ports

import (
	"context"
	"time"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/session"
)

// SessionRepository defines the storage contract for working sessions.
// Sessions live in memory only; the repository serializes access so that each
// Update closure runs atomically against its session.
type SessionRepository interface {
	// Add stores a new session. The session must be valid and its id unused.
	Add(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// Update runs fn against the session with the given id while holding the
	// store lock, so the read-validate-apply sequence inside fn is atomic.
	// An error from fn is returned as-is and counts as a declined operation.
	Update(ctx context.Context, id kernel.UUID, fn func(*session.Session) error) error

	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteIdle removes every session idle for at least ttl and returns how
	// many were evicted.
	DeleteIdle(ctx context.Context, now time.Time, ttl time.Duration) (int, error)
}
