package commands

import (
	"errors"
	"fmt"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial edit of one order's fields. Only the
// fields present in the edit are touched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	orderIndex int
	edit       session.OrderEdit

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order.
func NewUpdateOrderCommand(sessionID kernel.UUID, orderIndex int, edit session.OrderEdit) (UpdateOrderCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		validateOrderIndex(orderIndex),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		sessionID:  sessionID,
		orderIndex: orderIndex,
		edit:       edit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c UpdateOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderIndex returns the index of the order to edit.
func (c UpdateOrderCommand) OrderIndex() int {
	return c.orderIndex
}

// Edit returns the partial update to apply.
func (c UpdateOrderCommand) Edit() session.OrderEdit {
	return c.edit
}

func validateOrderIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderIndex", fmt.Errorf("%d is negative", index))
	}
	return nil
}
