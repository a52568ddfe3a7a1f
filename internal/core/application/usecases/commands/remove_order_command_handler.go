package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// RemoveOrderCommandHandler deletes orders from a session's working set.
type RemoveOrderCommandHandler struct {
	sessions ports.SessionRepository
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(sessions ports.SessionRepository) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.RemoveOrder(cmd.OrderIndex())
	})
}
