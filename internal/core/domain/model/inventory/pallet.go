package inventory

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPalletIsNotConstructed is returned when using a Pallet that was not created via NewPallet.
var ErrPalletIsNotConstructed = errors.New("Pallet must be created via NewPallet constructor")

// Pallet is a quality-homogeneous bin of Loose packages with a count capacity.
// A pallet is stored on a weight line; its weight is the sum of its packages.
type Pallet struct {
	id          kernel.UUID
	qualityMark kernel.QualityMark
	maxCapacity int
	packages    []*Package
	lineID      *kernel.UUID
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

func NewPallet(id kernel.UUID, qualityMark kernel.QualityMark, maxCapacity int, createdAt time.Time) (*Pallet, error) {
	p := &Pallet{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setQualityMark(qualityMark),
		p.setMaxCapacity(maxCapacity),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pallet) ID() kernel.UUID {
	return p.id
}

func (p *Pallet) QualityMark() kernel.QualityMark {
	return p.qualityMark
}

func (p *Pallet) MaxCapacity() int {
	return p.maxCapacity
}

func (p *Pallet) CreatedAt() time.Time {
	return p.createdAt
}

// Packages returns the contained packages in insertion order.
func (p *Pallet) Packages() []*Package {
	return slices.Clone(p.packages)
}

func (p *Pallet) CurrentCount() int {
	return len(p.packages)
}

func (p *Pallet) AvailableCapacity() int {
	return p.maxCapacity - len(p.packages)
}

// TotalMass is the summed mass of the contained packages, zero when empty.
func (p *Pallet) TotalMass() decimal.Decimal {
	total := decimal.Zero
	for _, pkg := range p.packages {
		total = total.Add(pkg.Mass().Decimal())
	}
	return total
}

// LineID returns the serial number of the line holding the pallet.
func (p *Pallet) LineID() (kernel.UUID, bool) {
	if p.lineID == nil {
		return kernel.UUID{}, false
	}
	return *p.lineID, true
}

// CheckPackage reports whether the package would be accepted, without
// changing anything. Kind is checked before quality, quality before capacity.
func (p *Pallet) CheckPackage(pkg *Package) (Admission, error) {
	if err := pkg.Validate(); err != nil {
		return Admitted, errs.NewValueIsRequiredErrorWithCause("package", err)
	}
	if pkg.Kind() != Loose {
		return Admitted, fmt.Errorf("%w: pallet %s accepts loose packages only, got %s",
			ErrTypeMismatch, p.id, pkg.Kind())
	}
	if !pkg.QualityMark().IsEqual(p.qualityMark) {
		return Admitted, fmt.Errorf("%w: pallet %s holds quality %q, package %s has %q",
			ErrQualityMismatch, p.id, p.qualityMark, pkg.ID(), pkg.QualityMark())
	}
	if pkg.IsDiscarded() {
		return Admitted, fmt.Errorf("%w: %s", ErrPackageDiscarded, pkg.ID())
	}
	if p.contains(pkg) {
		return AlreadyPresent, nil
	}
	if len(p.packages) >= p.maxCapacity {
		return CapacityExceeded, nil
	}
	return Admitted, nil
}

// AddPackage appends a Loose package of the pallet's quality and links it to
// the pallet. A full pallet returns false without an error. A package still
// linked to another container is refused with ErrAlreadyPlaced.
func (p *Pallet) AddPackage(pkg *Package) (bool, error) {
	admission, err := p.CheckPackage(pkg)
	if err != nil {
		return false, err
	}
	if admission != Admitted {
		return false, nil
	}
	if err := pkg.assignLocation(palletLocation(p.id)); err != nil {
		return false, err
	}
	p.packages = append(p.packages, pkg)
	return true, nil
}

// RemovePackage unlinks a contained package. Returns false when absent.
func (p *Pallet) RemovePackage(pkg *Package) bool {
	idx := p.indexOf(pkg)
	if idx < 0 {
		return false
	}
	p.packages = slices.Delete(p.packages, idx, idx+1)
	pkg.clearLocation()
	return true
}

func (p *Pallet) IsEqual(other *Pallet) bool {
	if p == nil || other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

func (p *Pallet) Validate() error {
	if p == nil {
		return ErrPalletIsNotConstructed
	}
	return p.guard.Validate(ErrPalletIsNotConstructed)
}

func (p *Pallet) contains(pkg *Package) bool {
	return p.indexOf(pkg) >= 0
}

func (p *Pallet) indexOf(pkg *Package) int {
	if pkg == nil {
		return -1
	}
	return slices.IndexFunc(p.packages, func(item *Package) bool {
		return item.IsEqual(pkg)
	})
}

func (p *Pallet) assignLine(lineID kernel.UUID) error {
	if p.lineID != nil && !p.lineID.IsEqual(lineID) {
		return fmt.Errorf("%w: pallet %s is on line %s", ErrAlreadyPlaced, p.id, *p.lineID)
	}
	p.lineID = &lineID
	return nil
}

func (p *Pallet) clearLine() {
	p.lineID = nil
}

func (p *Pallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pallet) setQualityMark(mark kernel.QualityMark) error {
	if err := mark.Validate(); err != nil {
		return err
	}
	p.qualityMark = mark
	return nil
}

func (p *Pallet) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity, 1, "unbounded")
	}
	p.maxCapacity = maxCapacity
	return nil
}

func (p *Pallet) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	p.createdAt = createdAt
	return nil
}
