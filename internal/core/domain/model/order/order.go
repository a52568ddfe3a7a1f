package order

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"routeboard/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents one delivery in the working set.
//
// Order follows these invariants:
//   - index is non-negative and, within a session, unique for the whole session
//   - every item quantity is a positive integer
//   - group is either empty (ungrouped) or the name of a live registry group;
//     the owning session keeps the reference consistent across group renames
//     and deletes
//   - can only be created through the NewOrder constructor
//
// Fields are private; mutations go through validated methods so an Order can
// never hold a negative quantity or a half-applied edit.
type Order struct {
	// index is the stable identity within the working session.
	index int

	// deliveryLabel is free text shown on the delivery sheet ("12", "M3").
	deliveryLabel string

	customer string
	phone    string
	address  string
	city     string
	zipCode  string

	// itemQuantities maps item name to a positive quantity.
	itemQuantities map[string]int

	// group is the name of the assigned delivery group, empty when ungrouped.
	group string

	// isManual marks operator-added orders as opposed to parsed ones.
	isManual bool

	// isConstructed ensures the order was created via NewOrder.
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid Order.
//
// Fields other than index and itemQuantities may be empty at construction:
// parsed uploads routinely contain blanks that the operator fills in later, and
// completeness is checked separately before the working set is confirmed.
func NewOrder(index int, deliveryLabel, customer, address, city, zipCode string, itemQuantities map[string]int) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIndex(index),
		o.setItemQuantities(itemQuantities),
	); err != nil {
		return nil, err
	}

	o.deliveryLabel = deliveryLabel
	o.customer = customer
	o.address = address
	o.city = city
	o.zipCode = zipCode

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their stable index identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.index == other.index
}

// Index returns the order's stable identity within the session.
func (o *Order) Index() int {
	return o.index
}

// DeliveryLabel returns the free-text delivery label.
func (o *Order) DeliveryLabel() string {
	return o.deliveryLabel
}

// Customer returns the customer name.
func (o *Order) Customer() string {
	return o.customer
}

// Phone returns the customer phone number.
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the street address.
func (o *Order) Address() string {
	return o.address
}

// City returns the city.
func (o *Order) City() string {
	return o.city
}

// ZipCode returns the zip code.
func (o *Order) ZipCode() string {
	return o.zipCode
}

// ItemQuantities returns a copy of the item-name to quantity mapping.
func (o *Order) ItemQuantities() map[string]int {
	return maps.Clone(o.itemQuantities)
}

// Group returns the assigned group name, or the empty string when ungrouped.
func (o *Order) Group() string {
	return o.group
}

// IsGrouped reports whether the order belongs to a delivery group.
func (o *Order) IsGrouped() bool {
	return o.group != ""
}

// IsManual reports whether the order was added by the operator rather than
// parsed from the upload.
func (o *Order) IsManual() bool {
	return o.isManual
}

// SetDeliveryLabel replaces the delivery label. The label is independently
// editable free text, so no validation applies.
func (o *Order) SetDeliveryLabel(label string) {
	o.deliveryLabel = label
}

// SetCustomer replaces the customer name.
func (o *Order) SetCustomer(customer string) {
	o.customer = customer
}

// SetPhone replaces the phone number.
func (o *Order) SetPhone(phone string) {
	o.phone = phone
}

// SetAddress replaces the street address.
func (o *Order) SetAddress(address string) {
	o.address = address
}

// SetCity replaces the city.
func (o *Order) SetCity(city string) {
	o.city = city
}

// SetZipCode replaces the zip code.
func (o *Order) SetZipCode(zipCode string) {
	o.zipCode = zipCode
}

// SetItemQuantities replaces the item mapping. Every quantity must be a
// positive integer; on validation failure the existing mapping is kept.
func (o *Order) SetItemQuantities(itemQuantities map[string]int) error {
	previous := o.itemQuantities
	if err := o.setItemQuantities(itemQuantities); err != nil {
		o.itemQuantities = previous
		return err
	}
	return nil
}

// AssignToGroup points the order at the named group. The owning session is
// responsible for ensuring the group exists in its registry.
func (o *Order) AssignToGroup(name string) {
	o.group = name
}

// ClearGroup detaches the order from any group.
func (o *Order) ClearGroup() {
	o.group = ""
}

// MarkManual flags the order as operator-added.
func (o *Order) MarkManual() {
	o.isManual = true
}

// HasRequiredFields reports whether customer, address, city, and zip are all
// non-blank. Orders missing any of these cannot be routed or labeled.
func (o *Order) HasRequiredFields() bool {
	for _, field := range []string{o.customer, o.address, o.city, o.zipCode} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

func (o *Order) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidErrorWithCause("index", fmt.Errorf("%d is negative", index))
	}
	o.index = index
	return nil
}

func (o *Order) setItemQuantities(itemQuantities map[string]int) error {
	for name, qty := range itemQuantities {
		if qty <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("itemQuantities",
				fmt.Errorf("quantity %d for %q is not greater than 0", qty, name))
		}
	}
	o.itemQuantities = maps.Clone(itemQuantities)
	if o.itemQuantities == nil {
		o.itemQuantities = map[string]int{}
	}
	return nil
}
