package inventory

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrPackageIsNotConstructed is returned when using a Package that was not created via NewPackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
	// ErrCreatedAtIsRequired is returned for a zero creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Package is a unit of goods, either Loose or a Carton.
//
// A package is created free-standing. It gets a location only when a container
// accepts it: a Line for a Carton, a Pallet for a Loose package. A discarded
// package has no location and is never accepted again.
//
// Business rules:
//   - Serial number, quality mark and mass are fixed at creation
//   - A package has at most one location
//   - Discarding is permanent and idempotent
//
// Example usage:
//
//	mark, _ := kernel.NewQualityMark("A")
//	mass, _ := kernel.NewMassFromFloat(12.5)
//	pkg, err := inventory.NewPackage(kernel.NewUUID(), inventory.Carton, mark, mass, time.Now())
//	if err != nil {
//	    return err
//	}
type Package struct {
	// id is the package serial number
	id kernel.UUID
	// kind is Loose or Carton
	kind Kind
	// qualityMark is the grade of the goods
	qualityMark kernel.QualityMark
	// mass is the weight in kilograms
	mass kernel.Mass
	// createdAt orders packages in the offload queue
	createdAt time.Time
	// discarded marks the package as unusable
	discarded bool
	// location points to the containing line or pallet, nil when free-standing
	location *Location
	// guard ensures the package was created via NewPackage
	guard guard.ConstructorGuard
}

// NewPackage creates a free-standing package. All argument errors are
// aggregated with errors.Join.
func NewPackage(
	id kernel.UUID,
	kind Kind,
	qualityMark kernel.QualityMark,
	mass kernel.Mass,
	createdAt time.Time,
) (*Package, error) {
	p := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setKind(kind),
		p.setQualityMark(qualityMark),
		p.setMass(mass),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) Kind() Kind {
	return p.kind
}

func (p *Package) QualityMark() kernel.QualityMark {
	return p.qualityMark
}

func (p *Package) Mass() kernel.Mass {
	return p.mass
}

func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Package) IsDiscarded() bool {
	return p.discarded
}

// Location returns the back-link to the containing line or pallet.
func (p *Package) Location() (Location, bool) {
	if p.location == nil {
		return Location{}, false
	}
	return *p.location, true
}

// IsEqual compares packages by serial number.
func (p *Package) IsEqual(other *Package) bool {
	if p == nil || other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Discard marks the package unusable. The package has to be removed from its
// container first; discarding a located package fails with ErrAlreadyPlaced.
// Callers holding a stored package go through LogisticsManager.DiscardPackage,
// which detaches it before discarding. Discarding twice is a no-op.
func (p *Package) Discard() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.discarded {
		return nil
	}
	if p.location != nil {
		return fmt.Errorf("%w: remove package %s from its %s before discarding",
			ErrAlreadyPlaced, p.id, p.location.kind)
	}
	p.discarded = true
	return nil
}

func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// assignLocation records the back-link. Re-assigning the current location is
// allowed, any other location must be cleared by its container first.
func (p *Package) assignLocation(location Location) error {
	if p.discarded {
		return fmt.Errorf("%w: %s", ErrPackageDiscarded, p.id)
	}
	if p.location != nil && !p.location.IsEqual(location) {
		return fmt.Errorf("%w: package %s is in %s %s",
			ErrAlreadyPlaced, p.id, p.location.kind, p.location.id)
	}
	p.location = &location
	return nil
}

func (p *Package) clearLocation() {
	p.location = nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setKind(kind Kind) error {
	if kind != Loose && kind != Carton {
		return errs.NewValueIsInvalidError("kind")
	}
	p.kind = kind
	return nil
}

func (p *Package) setQualityMark(mark kernel.QualityMark) error {
	if err := mark.Validate(); err != nil {
		return err
	}
	p.qualityMark = mark
	return nil
}

func (p *Package) setMass(mass kernel.Mass) error {
	if err := mass.Validate(); err != nil {
		return err
	}
	p.mass = mass
	return nil
}

func (p *Package) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	p.createdAt = createdAt
	return nil
}
