package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// ReorderOrderCommandHandler moves orders within their group. Cross-group
// drags are declined and leave the list untouched.
type ReorderOrderCommandHandler struct {
	sessions ports.SessionRepository
}

// NewReorderOrderCommandHandler creates a handler for reordering.
func NewReorderOrderCommandHandler(sessions ports.SessionRepository) ReorderOrderCommandHandler {
	return ReorderOrderCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *ReorderOrderCommandHandler) Handle(ctx context.Context, cmd ReorderOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.Reorder(cmd.DraggedIndex(), cmd.TargetIndex())
	})
}
