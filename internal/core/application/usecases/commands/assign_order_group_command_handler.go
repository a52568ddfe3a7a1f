package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// AssignOrderGroupCommandHandler moves orders between groups.
type AssignOrderGroupCommandHandler struct {
	sessions ports.SessionRepository
}

// NewAssignOrderGroupCommandHandler creates a handler for group assignment.
func NewAssignOrderGroupCommandHandler(sessions ports.SessionRepository) AssignOrderGroupCommandHandler {
	return AssignOrderGroupCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *AssignOrderGroupCommandHandler) Handle(ctx context.Context, cmd AssignOrderGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.AssignOrderGroup(cmd.OrderIndex(), cmd.GroupName())
	})
}
