// Package services contains domain services: pieces of domain behavior that
// do not belong to a single entity.
//
// DragSelect is the interaction state machine behind drag multi-selection of
// orders. It owns no selection storage itself; every transition takes the
// current selection set and returns the next one, and the caller-owned set is
// the single source of truth supplied back on the next event.
package services
