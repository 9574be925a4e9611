package guard

import "errors"

var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. The zero value
// is unconstructed, so a struct literal or a `var x T` declaration fails
// Validate until the owning constructor sets the guard.
type ConstructorGuard struct {
	constructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns notConstructed (or ErrDefaultConstructorGuard when it is nil)
// for a zero value guard.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
