package inventory

import (
	"errors"
	"slices"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrWarehouseIsNotConstructed is returned when using a Warehouse that was not created via NewWarehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
	// ErrWarehouseNameIsRequired is returned for an empty warehouse name.
	ErrWarehouseNameIsRequired = errs.NewValueIsRequiredError("name")
)

var hundred = decimal.NewFromInt(100)

// Warehouse is an ordered collection of lines.
//
// Its usage is the sum of its lines' usage. The maximum capacity is reported
// through UtilizationPercentage but never enforced; each line enforces its
// own limit.
type Warehouse struct {
	id          kernel.UUID
	name        string
	maxCapacity decimal.Decimal
	lines       []*Line
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewWarehouse creates an empty warehouse. A zero maxCapacity is allowed and
// reports 0% utilization.
func NewWarehouse(id kernel.UUID, name string, maxCapacity decimal.Decimal, createdAt time.Time) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setMaxCapacity(maxCapacity),
		w.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) Name() string {
	return w.name
}

func (w *Warehouse) MaxCapacity() decimal.Decimal {
	return w.maxCapacity
}

func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Warehouse) Lines() []*Line {
	return slices.Clone(w.lines)
}

// AddLine attaches a line and links it to the warehouse. Adding a line that
// is already attached is a no-op; a line owned by another warehouse is
// refused with ErrAlreadyPlaced.
func (w *Warehouse) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("line", err)
	}
	if slices.ContainsFunc(w.lines, line.IsEqual) {
		return nil
	}
	if err := line.assignWarehouse(w.id); err != nil {
		return err
	}
	w.lines = append(w.lines, line)
	return nil
}

// RemoveLine detaches a line and clears its warehouse link. Returns false when absent.
func (w *Warehouse) RemoveLine(line *Line) bool {
	if line == nil {
		return false
	}
	idx := slices.IndexFunc(w.lines, line.IsEqual)
	if idx < 0 {
		return false
	}
	w.lines = slices.Delete(w.lines, idx, idx+1)
	line.clearWarehouse()
	return true
}

func (w *Warehouse) Usage() decimal.Decimal {
	total := decimal.Zero
	for _, l := range w.lines {
		total = total.Add(l.Usage())
	}
	return total
}

func (w *Warehouse) AvailableCapacity() decimal.Decimal {
	return w.maxCapacity.Sub(w.Usage())
}

// UtilizationPercentage is usage / max * 100 rounded to two decimals, or 0
// when the warehouse has no capacity.
func (w *Warehouse) UtilizationPercentage() float64 {
	if !w.maxCapacity.IsPositive() {
		return 0
	}
	return w.Usage().Div(w.maxCapacity).Mul(hundred).Round(2).InexactFloat64()
}

// AllPackages flattens the warehouse in line order. Within a line cartons come
// first, then the packages of each pallet in pallet order.
func (w *Warehouse) AllPackages() []*Package {
	var all []*Package
	for _, l := range w.lines {
		all = append(all, l.AllPackages()...)
	}
	return all
}

// PackageMatch locates a package found by SearchPackage. Pallet is nil for cartons.
type PackageMatch struct {
	Package   *Package
	Warehouse *Warehouse
	Line      *Line
	Pallet    *Pallet
}

// PalletMatch locates a pallet found by SearchPallet.
type PalletMatch struct {
	Pallet    *Pallet
	Warehouse *Warehouse
	Line      *Line
}

// SearchPackage returns the first package with the given serial number in
// AllPackages order.
func (w *Warehouse) SearchPackage(serial kernel.UUID) (PackageMatch, bool) {
	for _, l := range w.lines {
		for _, c := range l.cartons {
			if c.ID().IsEqual(serial) {
				return PackageMatch{Package: c, Warehouse: w, Line: l}, true
			}
		}
		for _, p := range l.pallets {
			for _, pkg := range p.packages {
				if pkg.ID().IsEqual(serial) {
					return PackageMatch{Package: pkg, Warehouse: w, Line: l, Pallet: p}, true
				}
			}
		}
	}
	return PackageMatch{}, false
}

// SearchPallet returns the first pallet with the given serial number.
func (w *Warehouse) SearchPallet(serial kernel.UUID) (PalletMatch, bool) {
	for _, l := range w.lines {
		for _, p := range l.pallets {
			if p.ID().IsEqual(serial) {
				return PalletMatch{Pallet: p, Warehouse: w, Line: l}, true
			}
		}
	}
	return PalletMatch{}, false
}

func (w *Warehouse) IsEqual(other *Warehouse) bool {
	if w == nil || other == nil {
		return false
	}
	return w.id.IsEqual(other.id)
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrWarehouseNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Warehouse) setMaxCapacity(maxCapacity decimal.Decimal) error {
	if maxCapacity.IsNegative() {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity.String(), 0, "unbounded")
	}
	w.maxCapacity = maxCapacity
	return nil
}

func (w *Warehouse) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	w.createdAt = createdAt
	return nil
}
