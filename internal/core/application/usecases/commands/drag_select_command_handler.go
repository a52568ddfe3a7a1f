package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// DragSelectCommandHandler feeds pointer events into a session's drag
// selection machine.
type DragSelectCommandHandler struct {
	sessions ports.SessionRepository
}

// NewDragSelectCommandHandler creates a handler for drag selection events.
func NewDragSelectCommandHandler(sessions ports.SessionRepository) DragSelectCommandHandler {
	return DragSelectCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *DragSelectCommandHandler) Handle(ctx context.Context, cmd DragSelectCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		switch cmd.Phase() {
		case DragPhaseDown:
			return s.DragPointerDown(cmd.OrderIndex())
		case DragPhaseEnter:
			return s.DragPointerEnter(cmd.OrderIndex())
		default:
			s.DragPointerUp()
			return nil
		}
	})
}
