package commands

import (
	"context"
	"time"

	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/core/ports"
)

// CreateSessionCommandHandler opens working sessions. Uploaded orders get
// sequential indices in upload order; a raw upload is grouped by the grouping
// rules, a formatted one lands in the single default group.
type CreateSessionCommandHandler struct {
	sessions ports.SessionRepository
	rules    grouping.Rules
}

// NewCreateSessionCommandHandler creates a handler for opening sessions.
func NewCreateSessionCommandHandler(sessions ports.SessionRepository, rules grouping.Rules) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		sessions: sessions,
		rules:    rules,
	}
}

// Handle processes the command and returns the new session's identifier.
func (h *CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	inputs := cmd.Orders()
	orders := make([]*order.Order, 0, len(inputs))
	for i, in := range inputs {
		o, err := order.NewOrder(i, in.DeliveryLabel, in.Customer, in.Address, in.City, in.ZipCode, in.ItemQuantities)
		if err != nil {
			return kernel.UUID{}, err
		}
		o.SetPhone(in.Phone)
		orders = append(orders, o)
	}

	id := kernel.NewUUID()
	aggregate, err := session.NewSession(id, cmd.Format(), orders, h.rules, time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := h.sessions.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}
