package commands

import (
	"errors"
	"fmt"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

var ErrDragSelectCommandIsNotConstructed = errors.New(
	"DragSelectCommand must be created via NewDragSelectCommand constructor",
)

// DragPhase names the pointer event driving the drag-selection machine.
type DragPhase int

const (
	// DragPhaseUnknown represents an invalid or undefined phase.
	DragPhaseUnknown DragPhase = iota

	// DragPhaseDown starts a drag on an order.
	DragPhaseDown

	// DragPhaseEnter extends an in-progress drag over an order.
	DragPhaseEnter

	// DragPhaseUp ends the drag. The pointer may be released anywhere, so up
	// carries no order index.
	DragPhaseUp
)

func getDragPhaseStrings() map[DragPhase]string {
	return map[DragPhase]string{
		DragPhaseUnknown: "unknown",
		DragPhaseDown:    "down",
		DragPhaseEnter:   "enter",
		DragPhaseUp:      "up",
	}
}

// DragPhaseFromString parses a phase name received from clients.
func DragPhaseFromString(s string) (DragPhase, error) {
	for phase, str := range getDragPhaseStrings() {
		if phase != DragPhaseUnknown && str == s {
			return phase, nil
		}
	}
	return DragPhaseUnknown, errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%q is not a valid drag phase", s))
}

// String returns the wire name of the phase.
func (p DragPhase) String() string {
	if str, ok := getDragPhaseStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the DragPhase value is valid.
func (p DragPhase) Validate() error {
	switch p {
	case DragPhaseDown, DragPhaseEnter, DragPhaseUp:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%d is not a valid drag phase", int(p)))
	}
}

// DragSelectCommand represents one pointer event of a drag selection.
type DragSelectCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	phase      DragPhase
	orderIndex int

	guard guard.ConstructorGuard
}

// NewDragSelectCommand creates a command for one drag event. The order index
// is required for down and enter phases and ignored for up.
func NewDragSelectCommand(sessionID kernel.UUID, phase DragPhase, orderIndex int) (DragSelectCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		phase.Validate(),
	); err != nil {
		return DragSelectCommand{}, err
	}
	if phase != DragPhaseUp {
		if err := validateOrderIndex(orderIndex); err != nil {
			return DragSelectCommand{}, err
		}
	}

	return DragSelectCommand{
		sessionID:  sessionID,
		phase:      phase,
		orderIndex: orderIndex,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DragSelectCommand) Validate() error {
	return c.guard.Validate(ErrDragSelectCommandIsNotConstructed)
}

// SessionID returns the target session's identifier.
func (c DragSelectCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Phase returns the pointer event phase.
func (c DragSelectCommand) Phase() DragPhase {
	return c.phase
}

// OrderIndex returns the order the pointer is over. Meaningless for up.
func (c DragSelectCommand) OrderIndex() int {
	return c.orderIndex
}
