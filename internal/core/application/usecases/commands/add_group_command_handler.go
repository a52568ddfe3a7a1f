package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// AddGroupCommandHandler registers new delivery groups.
type AddGroupCommandHandler struct {
	sessions ports.SessionRepository
}

// NewAddGroupCommandHandler creates a handler for adding groups.
func NewAddGroupCommandHandler(sessions ports.SessionRepository) AddGroupCommandHandler {
	return AddGroupCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *AddGroupCommandHandler) Handle(ctx context.Context, cmd AddGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.AddGroup(cmd.Name())
	})
}
