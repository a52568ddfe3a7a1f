package commands

import (
	"errors"
	"fmt"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

var ErrSetSelectionCommandIsNotConstructed = errors.New(
	"SetSelectionCommand must be created via NewSetSelectionCommand constructor",
)

// SelectionScope names a bulk selection target.
type SelectionScope int

const (
	// SelectionScopeUnknown represents an invalid or undefined scope.
	SelectionScopeUnknown SelectionScope = iota

	// SelectionScopeAll selects every live order.
	SelectionScopeAll

	// SelectionScopeNone empties the selection.
	SelectionScopeNone

	// SelectionScopeGroup selects the orders of one group. An empty group
	// name targets the ungrouped orders.
	SelectionScopeGroup
)

func getSelectionScopeStrings() map[SelectionScope]string {
	return map[SelectionScope]string{
		SelectionScopeUnknown: "unknown",
		SelectionScopeAll:     "all",
		SelectionScopeNone:    "none",
		SelectionScopeGroup:   "group",
	}
}

// SelectionScopeFromString parses a scope name received from clients.
func SelectionScopeFromString(s string) (SelectionScope, error) {
	for scope, str := range getSelectionScopeStrings() {
		if scope != SelectionScopeUnknown && str == s {
			return scope, nil
		}
	}
	return SelectionScopeUnknown, errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%q is not a valid selection scope", s))
}

// String returns the wire name of the scope.
func (s SelectionScope) String() string {
	if str, ok := getSelectionScopeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the SelectionScope value is valid.
func (s SelectionScope) Validate() error {
	switch s {
	case SelectionScopeAll, SelectionScopeNone, SelectionScopeGroup:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%d is not a valid selection scope", int(s)))
	}
}

// SetSelectionCommand represents a bulk selection change: select all orders,
// clear the selection, or select exactly one group.
type SetSelectionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	scope     SelectionScope
	groupName string

	guard guard.ConstructorGuard
}

// NewSetSelectionCommand creates a command to replace the selection. The
// group name is only meaningful for the group scope.
func NewSetSelectionCommand(sessionID kernel.UUID, scope SelectionScope, groupName string) (SetSelectionCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		scope.Validate(),
	); err != nil {
		return SetSelectionCommand{}, err
	}

	return SetSelectionCommand{
		sessionID: sessionID,
		scope:     scope,
		groupName: groupName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetSelectionCommand) Validate() error {
	return c.guard.Validate(ErrSetSelectionCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c SetSelectionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Scope returns the bulk selection target.
func (c SetSelectionCommand) Scope() SelectionScope {
	return c.scope
}

// GroupName returns the group to select for the group scope.
func (c SetSelectionCommand) GroupName() string {
	return c.groupName
}
