package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a serial number was not initialized through NewUUID or UUIDFromString.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is the serial number value object shared by warehouses, lines, pallets
// and packages. It wraps github.com/google/uuid and is comparable, so it is
// used directly as a registry key.
//
// The zero value is invalid. Serial numbers are issued once, when an entity is
// created, and never change afterwards.
//
// Example usage:
//
//	serial := kernel.NewUUID()
//
//	// Parse a serial number typed by an operator
//	serial, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // not a serial number at all, treat as "no match"
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID issues a new random (version 4) serial number.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a serial number from its text form. Braced, urn and
// hyphen-less forms are accepted as google/uuid accepts them.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromGoogle wraps an already parsed uuid.UUID, as produced by the HTTP
// parameter binder.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	serial := UUID{id: id}
	if err := serial.Validate(); err != nil {
		return UUID{}, err
	}
	return serial, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both serial numbers are the same.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil serial number.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
