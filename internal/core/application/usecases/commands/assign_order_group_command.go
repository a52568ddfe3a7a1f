package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrAssignOrderGroupCommandIsNotConstructed = errors.New(
	"AssignOrderGroupCommand must be created via NewAssignOrderGroupCommand constructor",
)

// AssignOrderGroupCommand represents a request to move an order into a group.
// An empty group name detaches the order.
type AssignOrderGroupCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	orderIndex int
	groupName  string

	guard guard.ConstructorGuard
}

// NewAssignOrderGroupCommand creates a command to assign an order's group.
func NewAssignOrderGroupCommand(sessionID kernel.UUID, orderIndex int, groupName string) (AssignOrderGroupCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		validateOrderIndex(orderIndex),
	); err != nil {
		return AssignOrderGroupCommand{}, err
	}

	return AssignOrderGroupCommand{
		sessionID:  sessionID,
		orderIndex: orderIndex,
		groupName:  groupName,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderGroupCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderGroupCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c AssignOrderGroupCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderIndex returns the index of the order to move.
func (c AssignOrderGroupCommand) OrderIndex() int {
	return c.orderIndex
}

// GroupName returns the destination group, empty to detach.
func (c AssignOrderGroupCommand) GroupName() string {
	return c.groupName
}
