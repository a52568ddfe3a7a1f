package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrReorderOrderCommandIsNotConstructed = errors.New(
	"ReorderOrderCommand must be created via NewReorderOrderCommand constructor",
)

// ReorderOrderCommand represents a request to move one order immediately
// after another within their shared group.
type ReorderOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID    kernel.UUID
	draggedIndex int
	targetIndex  int

	guard guard.ConstructorGuard
}

// NewReorderOrderCommand creates a command to reorder an order.
func NewReorderOrderCommand(sessionID kernel.UUID, draggedIndex, targetIndex int) (ReorderOrderCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		validateOrderIndex(draggedIndex),
		validateOrderIndex(targetIndex),
	); err != nil {
		return ReorderOrderCommand{}, err
	}

	return ReorderOrderCommand{
		sessionID:    sessionID,
		draggedIndex: draggedIndex,
		targetIndex:  targetIndex,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderOrderCommand) Validate() error {
	return c.guard.Validate(ErrReorderOrderCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c ReorderOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// DraggedIndex returns the index of the order being moved.
func (c ReorderOrderCommand) DraggedIndex() int {
	return c.draggedIndex
}

// TargetIndex returns the index of the order to insert after.
func (c ReorderOrderCommand) TargetIndex() int {
	return c.targetIndex
}
