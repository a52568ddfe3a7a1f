package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// RenameGroupCommandHandler renames delivery groups, rewriting order
// references in the same atomic update.
type RenameGroupCommandHandler struct {
	sessions ports.SessionRepository
}

// NewRenameGroupCommandHandler creates a handler for renaming groups.
func NewRenameGroupCommandHandler(sessions ports.SessionRepository) RenameGroupCommandHandler {
	return RenameGroupCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *RenameGroupCommandHandler) Handle(ctx context.Context, cmd RenameGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.RenameGroup(cmd.OldName(), cmd.NewName())
	})
}
