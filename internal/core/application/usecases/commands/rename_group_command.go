package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrRenameGroupCommandIsNotConstructed = errors.New(
	"RenameGroupCommand must be created via NewRenameGroupCommand constructor",
)

// RenameGroupCommand represents a request to rename a delivery group. A blank
// or unchanged new name is a no-op at the session level, so only the old name
// is required here.
type RenameGroupCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	oldName   string
	newName   string

	guard guard.ConstructorGuard
}

// NewRenameGroupCommand creates a command to rename a group.
func NewRenameGroupCommand(sessionID kernel.UUID, oldName, newName string) (RenameGroupCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		validateGroupName(oldName),
	); err != nil {
		return RenameGroupCommand{}, err
	}

	return RenameGroupCommand{
		sessionID: sessionID,
		oldName:   oldName,
		newName:   newName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameGroupCommand) Validate() error {
	return c.guard.Validate(ErrRenameGroupCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c RenameGroupCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OldName returns the current group name.
func (c RenameGroupCommand) OldName() string {
	return c.oldName
}

// NewName returns the requested group name.
func (c RenameGroupCommand) NewName() string {
	return c.newName
}
