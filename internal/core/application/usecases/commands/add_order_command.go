package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

// AddOrderCommand represents a request to append an operator-entered order to
// a session's working set. The session assigns the index and the "M<n>" label.
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID      kernel.UUID
	customer       string
	phone          string
	address        string
	city           string
	zipCode        string
	itemQuantities map[string]int

	guard guard.ConstructorGuard
}

// NewAddOrderCommand creates a command to add a manual order. Fields may be
// blank at creation; completeness is checked separately before routing.
func NewAddOrderCommand(sessionID kernel.UUID, customer, phone, address, city, zipCode string, itemQuantities map[string]int) (AddOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return AddOrderCommand{}, err
	}

	return AddOrderCommand{
		sessionID:      sessionID,
		customer:       customer,
		phone:          phone,
		address:        address,
		city:           city,
		zipCode:        zipCode,
		itemQuantities: itemQuantities,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c AddOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Customer returns the customer name.
func (c AddOrderCommand) Customer() string {
	return c.customer
}

// Phone returns the customer phone number.
func (c AddOrderCommand) Phone() string {
	return c.phone
}

// Address returns the street address.
func (c AddOrderCommand) Address() string {
	return c.address
}

// City returns the city.
func (c AddOrderCommand) City() string {
	return c.city
}

// ZipCode returns the zip code.
func (c AddOrderCommand) ZipCode() string {
	return c.zipCode
}

// ItemQuantities returns the item-name to quantity mapping.
func (c AddOrderCommand) ItemQuantities() map[string]int {
	return c.itemQuantities
}
