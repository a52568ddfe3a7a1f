package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

var ErrAddGroupCommandIsNotConstructed = errors.New(
	"AddGroupCommand must be created via NewAddGroupCommand constructor",
)

// AddGroupCommand represents a request to register a new empty delivery group.
type AddGroupCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewAddGroupCommand creates a command to add a group. The name must not be
// blank.
func NewAddGroupCommand(sessionID kernel.UUID, name string) (AddGroupCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		validateGroupName(name),
	); err != nil {
		return AddGroupCommand{}, err
	}

	return AddGroupCommand{
		sessionID: sessionID,
		name:      name,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddGroupCommand) Validate() error {
	return c.guard.Validate(ErrAddGroupCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c AddGroupCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Name returns the new group's name.
func (c AddGroupCommand) Name() string {
	return c.name
}

func validateGroupName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
