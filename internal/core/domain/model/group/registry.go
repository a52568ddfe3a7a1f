// Package group defines the Registry of delivery groups: an insertion-ordered
// mapping from group name to display color with add, rename, and delete
// operations enforcing name uniqueness.
package group

import (
	"errors"
	"slices"

	"routeboard/internal/pkg/errs"
)

var (
	// ErrRegistryIsNotConstructed is returned when a Registry was not created
	// through the NewRegistry factory method.
	ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry constructor")

	// ErrGroupNameConflict is returned when a rename targets a name already
	// used by a distinct live group. The operation is declined and neither the
	// registry nor any order is mutated.
	ErrGroupNameConflict = errors.New("group name is already in use")
)

// Registry is the mutable collection of live delivery groups for one working
// session. It preserves insertion order for display and guarantees that every
// group always has some color: the first palette color not in use by a live
// group, falling back to a cyclic palette index once the palette is exhausted.
//
// Name matching is case-sensitive exact match throughout.
type Registry struct {
	// names holds group names in insertion order.
	names []string

	// colors maps each live name to its display color.
	colors map[string]string

	// palette is the fixed color pool, never mutated after construction.
	palette []string

	isConstructed bool
}

// NewRegistry creates an empty registry drawing colors from the given palette.
// The palette must not be empty.
func NewRegistry(palette []string) (*Registry, error) {
	if len(palette) == 0 {
		return nil, errs.NewValueIsRequiredError("palette")
	}

	return &Registry{
		colors:        map[string]string{},
		palette:       slices.Clone(palette),
		isConstructed: true,
	}, nil
}

// Validate ensures the Registry was properly constructed through NewRegistry.
func (r *Registry) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRegistryIsNotConstructed
	}
	return nil
}

// Add registers a new group under the next available palette color. Adding a
// name that already exists is a no-op, never an overwrite or an error. A blank
// name is declined.
func (r *Registry) Add(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if r.Has(name) {
		return nil
	}

	color := r.nextColor()
	r.names = append(r.names, name)
	r.colors[name] = color
	return nil
}

// AddWithColor registers a group under a specific color, used when seeding the
// registry from the predefined group table at upload time. Like Add it is
// idempotent on an existing name.
func (r *Registry) AddWithColor(name, color string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if r.Has(name) {
		return nil
	}

	r.names = append(r.names, name)
	r.colors[name] = color
	return nil
}

// Delete removes a group from the registry. It reports whether the name was a
// live group; clearing order references is the owning session's half of the
// atomic delete.
func (r *Registry) Delete(name string) bool {
	if !r.Has(name) {
		return false
	}

	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
	delete(r.colors, name)
	return true
}

// Rename replaces a group's name in place, keeping its color and display
// position. A blank or unchanged new name is a no-op. Renaming onto a distinct
// existing group is declined with ErrGroupNameConflict, leaving the registry
// untouched. The returned bool reports whether a rename was applied, so the
// owning session knows whether order references need rewriting.
func (r *Registry) Rename(oldName, newName string) (bool, error) {
	if newName == "" || newName == oldName {
		return false, nil
	}
	if !r.Has(oldName) {
		return false, errs.NewObjectNotFoundError("group", oldName)
	}
	if r.Has(newName) {
		return false, ErrGroupNameConflict
	}

	i := slices.Index(r.names, oldName)
	r.names[i] = newName
	r.colors[newName] = r.colors[oldName]
	delete(r.colors, oldName)
	return true, nil
}

// Has reports whether a group with the given name is live.
func (r *Registry) Has(name string) bool {
	_, ok := r.colors[name]
	return ok
}

// Color returns the display color of a live group.
func (r *Registry) Color(name string) (string, bool) {
	color, ok := r.colors[name]
	return color, ok
}

// Names returns the live group names in insertion order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of live groups.
func (r *Registry) Len() int {
	return len(r.names)
}

// nextColor picks the first palette color not used by any live group. Once
// every palette entry is in use it falls back to a cyclic index so that every
// group still gets a color.
func (r *Registry) nextColor() string {
	inUse := make(map[string]bool, len(r.colors))
	for _, color := range r.colors {
		inUse[color] = true
	}

	for _, color := range r.palette {
		if !inUse[color] {
			return color
		}
	}
	return r.palette[len(r.names)%len(r.palette)]
}
