package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrDeleteGroupCommandIsNotConstructed = errors.New(
	"DeleteGroupCommand must be created via NewDeleteGroupCommand constructor",
)

// DeleteGroupCommand represents a request to remove a delivery group. Its
// orders stay in the working set as ungrouped.
type DeleteGroupCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewDeleteGroupCommand creates a command to delete a group.
func NewDeleteGroupCommand(sessionID kernel.UUID, name string) (DeleteGroupCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		validateGroupName(name),
	); err != nil {
		return DeleteGroupCommand{}, err
	}

	return DeleteGroupCommand{
		sessionID: sessionID,
		name:      name,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteGroupCommand) Validate() error {
	return c.guard.Validate(ErrDeleteGroupCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c DeleteGroupCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Name returns the name of the group to delete.
func (c DeleteGroupCommand) Name() string {
	return c.name
}
