package commands

import (
	"context"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// AddOrderCommandHandler appends operator-entered orders to a session.
type AddOrderCommandHandler struct {
	sessions ports.SessionRepository
}

// NewAddOrderCommandHandler creates a handler for adding manual orders.
func NewAddOrderCommandHandler(sessions ports.SessionRepository) AddOrderCommandHandler {
	return AddOrderCommandHandler{sessions: sessions}
}

// Handle processes the command inside the session's update closure.
func (h *AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		_, err := s.AddOrder(cmd.Customer(), cmd.Phone(), cmd.Address(), cmd.City(), cmd.ZipCode(), cmd.ItemQuantities())
		return err
	})
}
