package guard

import "errors"

// ErrNotConstructed is the fallback error returned when a zero-value guard is
// validated without a caller-supplied error.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as having been built through its constructor.
// Embedding a guard in a struct makes the zero value detectable: only values
// produced by a constructor carry a constructed guard.
//
// The zero value of ConstructorGuard is "not constructed" and fails Validate.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Call this from every constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or ErrNotConstructed
// when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrNotConstructed
}
