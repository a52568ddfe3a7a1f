package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to delete one order from a session.
// The removed index is pruned from the selection and never reused.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	orderIndex int

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to remove an order.
func NewRemoveOrderCommand(sessionID kernel.UUID, orderIndex int) (RemoveOrderCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		validateOrderIndex(orderIndex),
	); err != nil {
		return RemoveOrderCommand{}, err
	}

	return RemoveOrderCommand{
		sessionID:  sessionID,
		orderIndex: orderIndex,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c RemoveOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderIndex returns the index of the order to remove.
func (c RemoveOrderCommand) OrderIndex() int {
	return c.orderIndex
}
