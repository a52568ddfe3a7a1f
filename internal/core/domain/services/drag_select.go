package services

import "maps"

// Selection is a set of order indices. Transitions never mutate their input
// set; they return a fresh one.
type Selection map[int]struct{}

// NewSelection creates an empty selection.
func NewSelection() Selection {
	return Selection{}
}

// Has reports whether an index is selected.
func (s Selection) Has(index int) bool {
	_, ok := s[index]
	return ok
}

// Indices returns the selected indices in unspecified order.
func (s Selection) Indices() []int {
	out := make([]int, 0, len(s))
	for index := range s {
		out = append(out, index)
	}
	return out
}

func (s Selection) clone() Selection {
	return maps.Clone(s)
}

// DragMode is the state of the drag-selection machine.
type DragMode int

const (
	// DragIdle means no drag is in progress; pointer-enter events are no-ops.
	DragIdle DragMode = iota

	// DragSelecting means the drag started on an unselected item and adds
	// every item the pointer passes over.
	DragSelecting

	// DragDeselecting means the drag started on a selected item and removes
	// every item the pointer passes over.
	DragDeselecting
)

// String returns the human-readable name of the mode.
func (m DragMode) String() string {
	switch m {
	case DragSelecting:
		return "selecting"
	case DragDeselecting:
		return "deselecting"
	default:
		return "idle"
	}
}

// DragSelect is the selection state machine driven by pointer events over an
// ordered collection of order indices.
//
// The machine holds only the drag mode. PointerDown toggles the pressed item
// and fixes the mode for the rest of the drag; PointerEnter applies the mode
// to every item the pointer crosses; PointerUp returns to idle. The up event
// must be delivered from anywhere in the process, not just the interactive
// region, because the pointer may be released outside it.
type DragSelect struct {
	mode DragMode
}

// NewDragSelect creates a machine in the idle state.
func NewDragSelect() DragSelect {
	return DragSelect{mode: DragIdle}
}

// Mode returns the current drag mode.
func (d *DragSelect) Mode() DragMode {
	return d.mode
}

// PointerDown starts a drag on the given index. If the index is currently
// selected the machine enters deselecting mode and removes it; otherwise it
// enters selecting mode and adds it. Returns the next selection.
func (d *DragSelect) PointerDown(selected Selection, index int) Selection {
	next := selected.clone()
	if next.Has(index) {
		d.mode = DragDeselecting
		delete(next, index)
	} else {
		d.mode = DragSelecting
		next[index] = struct{}{}
	}
	return next
}

// PointerEnter extends an in-progress drag over the given index, adding or
// removing it according to the current mode. Idempotent when the index is
// already in the target state; a no-op while idle.
func (d *DragSelect) PointerEnter(selected Selection, index int) Selection {
	switch d.mode {
	case DragSelecting:
		next := selected.clone()
		next[index] = struct{}{}
		return next
	case DragDeselecting:
		next := selected.clone()
		delete(next, index)
		return next
	default:
		return selected
	}
}

// PointerUp ends any in-progress drag. Safe to call in any state.
func (d *DragSelect) PointerUp() {
	d.mode = DragIdle
}

// SelectAll returns a selection holding exactly the supplied indices, whatever
// order they occur in and whether or not they are contiguous. It is a direct
// assignment that bypasses the drag machine and leaves the mode untouched.
func (d *DragSelect) SelectAll(indices []int) Selection {
	next := make(Selection, len(indices))
	for _, index := range indices {
		next[index] = struct{}{}
	}
	return next
}

// ClearAll returns the empty selection. Like SelectAll it bypasses the drag
// machine and leaves the mode untouched.
func (d *DragSelect) ClearAll() Selection {
	return NewSelection()
}
