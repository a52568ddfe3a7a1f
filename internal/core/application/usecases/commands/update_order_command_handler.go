package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial edits to orders. A declined edit
// leaves the order exactly as it was.
type UpdateOrderCommandHandler struct {
	sessions ports.SessionRepository
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(sessions ports.SessionRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.EditOrder(cmd.OrderIndex(), cmd.Edit())
	})
}
