package commands

import (
	"context"
	"time"

	"routeboard/internal/core/ports"
)

// CleanupSessionsCommandHandler evicts idle sessions. Run periodically by the
// cleanup job.
type CleanupSessionsCommandHandler struct {
	sessions ports.SessionRepository
}

// NewCleanupSessionsCommandHandler creates a handler for session eviction.
func NewCleanupSessionsCommandHandler(sessions ports.SessionRepository) CleanupSessionsCommandHandler {
	return CleanupSessionsCommandHandler{sessions: sessions}
}

// Handle evicts every idle session and returns how many were removed.
func (h *CleanupSessionsCommandHandler) Handle(ctx context.Context, cmd CleanupSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.sessions.DeleteIdle(ctx, time.Now(), cmd.TTL())
}
