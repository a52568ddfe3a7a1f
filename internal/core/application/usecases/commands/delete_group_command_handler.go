package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// DeleteGroupCommandHandler removes delivery groups, detaching their orders
// in the same atomic update.
type DeleteGroupCommandHandler struct {
	sessions ports.SessionRepository
}

// NewDeleteGroupCommandHandler creates a handler for deleting groups.
func NewDeleteGroupCommandHandler(sessions ports.SessionRepository) DeleteGroupCommandHandler {
	return DeleteGroupCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *DeleteGroupCommandHandler) Handle(ctx context.Context, cmd DeleteGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.DeleteGroup(cmd.Name())
	})
}
