package inventory

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var (
	// ErrTypeMismatch is returned when an item is offered to a container that cannot hold its kind.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrQualityMismatch is returned when a package grade differs from the pallet grade.
	ErrQualityMismatch = errors.New("quality mismatch")
	// ErrPackageDiscarded is returned when a discarded package is offered for storage.
	ErrPackageDiscarded = errors.New("package is discarded")
	// ErrAlreadyPlaced is returned when an item still linked to another container is
	// attached somewhere else, or discarded, without being removed first.
	ErrAlreadyPlaced = errors.New("item is placed in another container")
)

// LocationKind tells which container a Location points at.
type LocationKind int

const (
	LineLocation LocationKind = iota + 1
	PalletLocation
)

func (k LocationKind) String() string {
	switch k {
	case LineLocation:
		return "line"
	case PalletLocation:
		return "pallet"
	default:
		return "unknown"
	}
}

// Location is the non-owning back-link from a package to its container.
type Location struct {
	kind LocationKind
	id   kernel.UUID
}

func lineLocation(id kernel.UUID) Location {
	return Location{kind: LineLocation, id: id}
}

func palletLocation(id kernel.UUID) Location {
	return Location{kind: PalletLocation, id: id}
}

func (l Location) Kind() LocationKind {
	return l.kind
}

// ID is the serial number of the line or pallet.
func (l Location) ID() kernel.UUID {
	return l.id
}

func (l Location) IsEqual(other Location) bool {
	return l.kind == other.kind && l.id.IsEqual(other.id)
}
