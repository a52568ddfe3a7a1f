package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/session"
	"routeboard/internal/pkg/guard"
)

var ErrCreateSessionCommandIsNotConstructed = errors.New(
	"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
)

// OrderInput is one uploaded order as received from the client, before it
// gets an index and a group.
type OrderInput struct {
	DeliveryLabel  string
	Customer       string
	Phone          string
	Address        string
	City           string
	ZipCode        string
	ItemQuantities map[string]int
}

// CreateSessionCommand represents a request to open a new working session from
// an uploaded order list. The upload format decides how the orders are grouped.
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	format session.Format
	orders []OrderInput

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates a command to open a session. The format must
// be valid; the order list may be empty.
func NewCreateSessionCommand(format session.Format, orders []OrderInput) (CreateSessionCommand, error) {
	if err := format.Validate(); err != nil {
		return CreateSessionCommand{}, err
	}

	return CreateSessionCommand{
		format: format,
		orders: orders,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

// Format returns the upload format.
func (c CreateSessionCommand) Format() session.Format {
	return c.format
}

// Orders returns the uploaded orders in upload sequence.
func (c CreateSessionCommand) Orders() []OrderInput {
	return c.orders
}
