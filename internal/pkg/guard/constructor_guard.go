// Package guard provides a small helper that proves a value was created
// through its constructor rather than by zero-value struct literal.
package guard

import "errors"

// ErrObjectIsNotConstructed is returned by Validate when no specific error
// is supplied for an unconstructed value.
var ErrObjectIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as properly constructed. Embed it in a
// struct and initialize it with NewConstructorGuard inside the constructor;
// a zero-value struct fails Validate.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for constructed values. For unconstructed values it
// returns notConstructedErr, or ErrObjectIsNotConstructed when nil is given.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrObjectIsNotConstructed
	}
	return notConstructedErr
}
