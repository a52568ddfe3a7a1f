package session

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"routeboard/internal/core/domain/model/group"
	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/core/domain/services"
	"routeboard/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession factory method.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrCrossGroupReorder is returned when a reorder drags an order onto a
	// target in a different group. The operation is declined and the list is
	// left untouched.
	ErrCrossGroupReorder = errors.New("orders can only be reordered within their group")
)

// DefaultGroupName is the single group every order of a formatted upload is
// placed in. Formatted sheets arrive already arranged, so one group preserves
// the upload sequence while still giving the orders a color and a heading.
const DefaultGroupName = "Delivery"

// manualLabelPattern matches operator-assigned delivery labels of the form
// "M<n>". Labels in any other shape never influence the next manual number.
var manualLabelPattern = regexp.MustCompile(`^M(\d+)$`)

// Session is the aggregate root of one working set: the orders of a single
// upload, their delivery groups, and the operator's current selection. All
// mutations of orders, groups, and selection go through the session so the
// three stay consistent.
//
// Session follows these invariants:
//   - every order index is unique for the lifetime of the session; removed
//     indices are never reused
//   - every grouped order references a live registry group; group deletes and
//     renames update order references in the same operation
//   - the selection only ever contains live order indices
//   - can only be created through the NewSession constructor
type Session struct {
	// id is the session's unique identifier.
	id kernel.UUID

	// format records the upload shape the session was created from.
	format Format

	// orders is the canonical list. Its sequence is what reordering edits and
	// what the stable group sort preserves within each group.
	orders []*order.Order

	// groups is the registry of live delivery groups.
	groups *group.Registry

	// selection holds the indices of currently selected orders.
	selection services.Selection

	// drag is the pointer-driven selection machine.
	drag services.DragSelect

	// nextIndex is the index handed to the next added order, always one past
	// the highest index ever used.
	nextIndex int

	createdAt time.Time
	lastSeen  time.Time

	// isConstructed ensures the session was created via NewSession.
	isConstructed bool
}

// NewSession creates a working session from an uploaded order list. This is
// the only way to create a valid Session.
//
// For a raw upload every ungrouped order is assigned its initial group from
// the grouping rules, and the registry is seeded with exactly the groups that
// ended up holding orders: predefined groups first, in display sequence and
// with their fixed colors, then any remaining groups in order of appearance.
// For a formatted upload all orders land in the single default group.
func NewSession(
	id kernel.UUID,
	format Format,
	orders []*order.Order,
	rules grouping.Rules,
	now time.Time,
) (*Session, error) {
	if err := errors.Join(id.Validate(), format.Validate(), rules.Validate()); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(orders))
	nextIndex := 0
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if seen[o.Index()] {
			return nil, errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("duplicate order index %d", o.Index()))
		}
		seen[o.Index()] = true
		if o.Index() >= nextIndex {
			nextIndex = o.Index() + 1
		}
	}

	groups, err := group.NewRegistry(rules.Palette())
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:            id,
		format:        format,
		orders:        slices.Clone(orders),
		groups:        groups,
		selection:     services.NewSelection(),
		drag:          services.NewDragSelect(),
		nextIndex:     nextIndex,
		createdAt:     now,
		lastSeen:      now,
		isConstructed: true,
	}

	if err := s.seedGroups(rules); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate ensures the Session instance was properly constructed through
// NewSession. Returns ErrSessionIsNotConstructed otherwise.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Format returns the upload shape the session was created from.
func (s *Session) Format() Format {
	return s.format
}

// CreatedAt returns the creation time.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// LastSeen returns the time of the last operation on the session.
func (s *Session) LastSeen() time.Time {
	return s.lastSeen
}

// Touch records activity on the session, deferring idle eviction.
func (s *Session) Touch(now time.Time) {
	s.lastSeen = now
}

// IsIdle reports whether the session has seen no activity for at least ttl.
func (s *Session) IsIdle(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.lastSeen) >= ttl
}

// Orders returns the canonical order list. The slice is a copy; the orders
// are the live entities.
func (s *Session) Orders() []*order.Order {
	return slices.Clone(s.orders)
}

// SortedOrders returns the orders in display order: grouped by the rules'
// group sequence, upload sequence preserved within each group. A session
// without live groups keeps the plain canonical sequence.
func (s *Session) SortedOrders(rules grouping.Rules) []*order.Order {
	if s.groups.Len() == 0 {
		return slices.Clone(s.orders)
	}
	return rules.SortByGroupOrder(s.orders, true)
}

// Order returns the order with the given index.
func (s *Session) Order(index int) (*order.Order, error) {
	if i := s.position(index); i >= 0 {
		return s.orders[i], nil
	}
	return nil, errs.NewObjectNotFoundError("order", strconv.Itoa(index))
}

// AddOrder appends a new operator-entered order. It receives the next unused
// index and the next free "M<n>" delivery label, and starts ungrouped.
func (s *Session) AddOrder(customer, phone, address, city, zipCode string, itemQuantities map[string]int) (*order.Order, error) {
	o, err := order.NewOrder(s.nextIndex, s.nextManualLabel(), customer, address, city, zipCode, itemQuantities)
	if err != nil {
		return nil, err
	}
	o.SetPhone(phone)
	o.MarkManual()

	s.orders = append(s.orders, o)
	s.nextIndex++
	return o, nil
}

// OrderEdit is a partial update of an order's editable fields. Nil fields are
// left unchanged; a non-nil ItemQuantities replaces the mapping wholesale.
type OrderEdit struct {
	DeliveryLabel  *string
	Customer       *string
	Phone          *string
	Address        *string
	City           *string
	ZipCode        *string
	ItemQuantities map[string]int
}

// EditOrder applies a partial update to the order with the given index. The
// item mapping is validated before any field changes, so a declined edit
// leaves the order exactly as it was.
func (s *Session) EditOrder(index int, edit OrderEdit) error {
	o, err := s.Order(index)
	if err != nil {
		return err
	}

	if edit.ItemQuantities != nil {
		if err := o.SetItemQuantities(edit.ItemQuantities); err != nil {
			return err
		}
	}
	if edit.DeliveryLabel != nil {
		o.SetDeliveryLabel(*edit.DeliveryLabel)
	}
	if edit.Customer != nil {
		o.SetCustomer(*edit.Customer)
	}
	if edit.Phone != nil {
		o.SetPhone(*edit.Phone)
	}
	if edit.Address != nil {
		o.SetAddress(*edit.Address)
	}
	if edit.City != nil {
		o.SetCity(*edit.City)
	}
	if edit.ZipCode != nil {
		o.SetZipCode(*edit.ZipCode)
	}
	return nil
}

// RemoveOrder deletes the order with the given index and prunes it from the
// selection. The index is never reused for later orders.
func (s *Session) RemoveOrder(index int) error {
	i := s.position(index)
	if i < 0 {
		return errs.NewObjectNotFoundError("order", strconv.Itoa(index))
	}

	s.orders = slices.Delete(s.orders, i, i+1)
	delete(s.selection, index)
	return nil
}

// AssignOrderGroup moves an order into the named group, or detaches it when
// the name is empty. The group must be live.
func (s *Session) AssignOrderGroup(index int, name string) error {
	o, err := s.Order(index)
	if err != nil {
		return err
	}

	if name == "" {
		o.ClearGroup()
		return nil
	}
	if !s.groups.Has(name) {
		return errs.NewObjectNotFoundError("group", name)
	}
	o.AssignToGroup(name)
	return nil
}

// AddGroup registers a new empty delivery group. Adding an existing name is a
// no-op.
func (s *Session) AddGroup(name string) error {
	return s.groups.Add(name)
}

// RenameGroup renames a group and rewrites every order reference in the same
// operation. A blank or unchanged new name is a no-op; renaming onto a
// distinct existing group is declined with group.ErrGroupNameConflict.
func (s *Session) RenameGroup(oldName, newName string) error {
	renamed, err := s.groups.Rename(oldName, newName)
	if err != nil || !renamed {
		return err
	}

	for _, o := range s.orders {
		if o.Group() == oldName {
			o.AssignToGroup(newName)
		}
	}
	return nil
}

// DeleteGroup removes a group and detaches its orders in the same operation.
// The detached orders stay in the working set as ungrouped.
func (s *Session) DeleteGroup(name string) error {
	if !s.groups.Delete(name) {
		return errs.NewObjectNotFoundError("group", name)
	}

	for _, o := range s.orders {
		if o.Group() == name {
			o.ClearGroup()
		}
	}
	return nil
}

// Reorder moves the dragged order to sit immediately after the target order
// in the canonical list. Both orders must belong to the same group (or both
// be ungrouped); a cross-group drag is declined with ErrCrossGroupReorder and
// the list is left untouched. Because the group sort is stable, the new
// relative position survives every later re-sort.
func (s *Session) Reorder(draggedIndex, targetIndex int) error {
	if draggedIndex == targetIndex {
		return nil
	}

	di := s.position(draggedIndex)
	if di < 0 {
		return errs.NewObjectNotFoundError("order", strconv.Itoa(draggedIndex))
	}
	ti := s.position(targetIndex)
	if ti < 0 {
		return errs.NewObjectNotFoundError("order", strconv.Itoa(targetIndex))
	}
	if s.orders[di].Group() != s.orders[ti].Group() {
		return ErrCrossGroupReorder
	}

	dragged := s.orders[di]
	s.orders = slices.Delete(s.orders, di, di+1)
	s.orders = slices.Insert(s.orders, s.position(targetIndex)+1, dragged)
	return nil
}

// DragPointerDown starts a drag on the given order, toggling its membership
// and fixing the drag mode.
func (s *Session) DragPointerDown(index int) error {
	if s.position(index) < 0 {
		return errs.NewObjectNotFoundError("order", strconv.Itoa(index))
	}
	s.selection = s.drag.PointerDown(s.selection, index)
	return nil
}

// DragPointerEnter extends an in-progress drag over the given order. A no-op
// while no drag is in progress.
func (s *Session) DragPointerEnter(index int) error {
	if s.position(index) < 0 {
		return errs.NewObjectNotFoundError("order", strconv.Itoa(index))
	}
	s.selection = s.drag.PointerEnter(s.selection, index)
	return nil
}

// DragPointerUp ends any in-progress drag. Safe to call in any state.
func (s *Session) DragPointerUp() {
	s.drag.PointerUp()
}

// DragMode returns the current state of the drag machine.
func (s *Session) DragMode() services.DragMode {
	return s.drag.Mode()
}

// SelectAll replaces the selection with every live order.
func (s *Session) SelectAll() {
	indices := make([]int, 0, len(s.orders))
	for _, o := range s.orders {
		indices = append(indices, o.Index())
	}
	s.selection = s.drag.SelectAll(indices)
}

// SelectGroup replaces the selection with the orders of one group. An empty
// name selects the ungrouped orders.
func (s *Session) SelectGroup(name string) error {
	if name != "" && !s.groups.Has(name) {
		return errs.NewObjectNotFoundError("group", name)
	}

	var indices []int
	for _, o := range s.orders {
		if o.Group() == name {
			indices = append(indices, o.Index())
		}
	}
	s.selection = s.drag.SelectAll(indices)
	return nil
}

// ClearSelection empties the selection.
func (s *Session) ClearSelection() {
	s.selection = s.drag.ClearAll()
}

// IsSelected reports whether the order with the given index is selected.
func (s *Session) IsSelected(index int) bool {
	return s.selection.Has(index)
}

// SelectedIndices returns the selected order indices in unspecified order.
func (s *Session) SelectedIndices() []int {
	return s.selection.Indices()
}

// SelectedOrders returns the selected orders in display order.
func (s *Session) SelectedOrders(rules grouping.Rules) []*order.Order {
	sorted := s.SortedOrders(rules)
	selected := make([]*order.Order, 0, len(s.selection))
	for _, o := range sorted {
		if s.selection.Has(o.Index()) {
			selected = append(selected, o)
		}
	}
	return selected
}

// HasEmptyRequired reports whether any order is missing a required field
// (customer, address, city, or zip code). Such a working set cannot be routed
// or labeled yet.
func (s *Session) HasEmptyRequired() bool {
	for _, o := range s.orders {
		if !o.HasRequiredFields() {
			return true
		}
	}
	return false
}

// GroupNames returns the live group names in insertion order.
func (s *Session) GroupNames() []string {
	return s.groups.Names()
}

// GroupColor returns the display color of a live group.
func (s *Session) GroupColor(name string) (string, bool) {
	return s.groups.Color(name)
}

// GroupCount returns the number of orders in the named group.
func (s *Session) GroupCount(name string) int {
	count := 0
	for _, o := range s.orders {
		if o.Group() == name {
			count++
		}
	}
	return count
}

// UngroupedCount returns the number of orders not assigned to any group.
func (s *Session) UngroupedCount() int {
	return s.GroupCount("")
}

// seedGroups applies the upload-time grouping for the session format and
// registers the resulting groups.
func (s *Session) seedGroups(rules grouping.Rules) error {
	switch s.format {
	case FormatFormatted:
		if err := s.groups.Add(DefaultGroupName); err != nil {
			return err
		}
		for _, o := range s.orders {
			o.AssignToGroup(DefaultGroupName)
		}
		return nil

	case FormatRaw:
		for _, o := range s.orders {
			if o.IsGrouped() {
				continue
			}
			if name, ok := rules.AssignGroup(o.City(), o.ZipCode()); ok {
				o.AssignToGroup(name)
			}
		}

		present := make(map[string]bool, len(s.orders))
		for _, o := range s.orders {
			if o.IsGrouped() {
				present[o.Group()] = true
			}
		}
		for _, name := range rules.DisplaySequence() {
			if !present[name] {
				continue
			}
			if color, ok := rules.PredefinedColor(name); ok {
				if err := s.groups.AddWithColor(name, color); err != nil {
					return err
				}
				continue
			}
			if err := s.groups.Add(name); err != nil {
				return err
			}
		}
		for _, o := range s.orders {
			if o.IsGrouped() && !s.groups.Has(o.Group()) {
				if err := s.groups.Add(o.Group()); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		return errs.NewValueIsInvalidError("format")
	}
}

// nextManualLabel computes the next free "M<n>" delivery label: one past the
// highest existing manual number, starting at M1.
func (s *Session) nextManualLabel() string {
	maxN := 0
	for _, o := range s.orders {
		m := manualLabelPattern.FindStringSubmatch(o.DeliveryLabel())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxN {
			maxN = n
		}
	}
	return fmt.Sprintf("M%d", maxN+1)
}

// position returns the canonical-list position of the order with the given
// index, or -1.
func (s *Session) position(index int) int {
	return slices.IndexFunc(s.orders, func(o *order.Order) bool {
		return o.Index() == index
	})
}
