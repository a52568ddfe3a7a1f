package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// SetSelectionCommandHandler applies bulk selection changes.
type SetSelectionCommandHandler struct {
	sessions ports.SessionRepository
}

// NewSetSelectionCommandHandler creates a handler for bulk selection.
func NewSetSelectionCommandHandler(sessions ports.SessionRepository) SetSelectionCommandHandler {
	return SetSelectionCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *SetSelectionCommandHandler) Handle(ctx context.Context, cmd SetSelectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		switch cmd.Scope() {
		case SelectionScopeAll:
			s.SelectAll()
			return nil
		case SelectionScopeGroup:
			return s.SelectGroup(cmd.GroupName())
		default:
			s.ClearSelection()
			return nil
		}
	})
}
