package inventory

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Kind is the package variant.
type Kind int

const (
	UnknownKind Kind = iota
	// Loose packages are stored in pallets only.
	Loose
	// Carton packages are stored directly on count lines.
	Carton
)

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loose":
		return Loose, nil
	case "carton":
		return Carton, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause("packageType",
			fmt.Errorf("unknown package type %q, expected loose or carton", s))
	}
}

func (k Kind) String() string {
	switch k {
	case Loose:
		return "loose"
	case Carton:
		return "carton"
	default:
		return "unknown"
	}
}

// CapacityMode decides what a line stores and how its usage is measured.
type CapacityMode int

const (
	UnknownCapacityMode CapacityMode = iota
	// CountCapacity lines hold cartons; usage is the number of cartons.
	CountCapacity
	// WeightCapacity lines hold pallets; usage is the summed pallet mass.
	WeightCapacity
)

func ParseCapacityMode(s string) (CapacityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "count":
		return CountCapacity, nil
	case "weight":
		return WeightCapacity, nil
	default:
		return UnknownCapacityMode, errs.NewValueIsInvalidErrorWithCause("capacityType",
			fmt.Errorf("unknown capacity type %q, expected count or weight", s))
	}
}

func (m CapacityMode) String() string {
	switch m {
	case CountCapacity:
		return "count"
	case WeightCapacity:
		return "weight"
	default:
		return "unknown"
	}
}

// Label is the human readable name of what the line stores.
func (m CapacityMode) Label() string {
	switch m {
	case CountCapacity:
		return "cartons"
	case WeightCapacity:
		return "loose packages"
	default:
		return "unknown"
	}
}

// Action is recorded in the line history.
type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
)

// Admission is the outcome of an admission check that did not fail with an error.
type Admission int

const (
	Admitted Admission = iota
	CapacityExceeded
	QualityRejected
	AlreadyPresent
)

func (a Admission) String() string {
	switch a {
	case Admitted:
		return "admitted"
	case CapacityExceeded:
		return "capacity exceeded"
	case QualityRejected:
		return "quality slots exhausted"
	case AlreadyPresent:
		return "already present"
	default:
		return "unknown"
	}
}
