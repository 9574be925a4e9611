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

const (
	// singleQualityType is the quality slot count of a line without mixed approval.
	singleQualityType = 1
	// DefaultMixedQualityTypes is the slot count granted when no explicit value is given.
	DefaultMixedQualityTypes = 3
)

var (
	// ErrLineIsNotConstructed is returned when using a Line that was not created via NewLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
	// ErrLineNumberIsInvalid is returned for a non-positive line number.
	ErrLineNumberIsInvalid = errs.NewValueIsInvalidError("lineNumber")
)

// Line is a storage slot inside a warehouse.
//
// A CountCapacity line stores Cartons directly and its capacity is a number of
// cartons. A WeightCapacity line stores Pallets and its capacity is a mass in
// kilograms. The mode is fixed at creation; a line never holds both.
//
// Key business rules:
//   - Usage never exceeds the maximum capacity
//   - The number of distinct quality marks is bounded by the quality slot
//     count, which is 1 unless mixed quality is approved
//   - Every placement and removal is appended to the history
//   - Narrowing the slot count does not evict goods already stored
//
// Example usage:
//
//	line, _ := inventory.NewLine(kernel.NewUUID(), 1, inventory.CountCapacity, decimal.NewFromInt(20))
//	ok, err := line.AddCarton(carton)
//	if err != nil {
//	    // not a carton, or the line stores pallets
//	}
//	if !ok {
//	    // line full or quality slots exhausted
//	}
type Line struct {
	// id is the line serial number
	id kernel.UUID
	// number is the label painted on the floor, not unique across warehouses
	number int
	// mode decides between cartons and pallets
	mode CapacityMode
	// maxCapacity is a carton count or a mass in kilograms, depending on mode
	maxCapacity decimal.Decimal
	// maxQualityTypes bounds the distinct quality marks stored on the line
	maxQualityTypes int
	// mixedQualityApproved is set by SetMixedQualityApproval
	mixedQualityApproved bool
	cartons              []*Package
	pallets              []*Pallet
	// history is append-only
	history []HistoryEntry
	// warehouseID points to the owning warehouse, nil when detached
	warehouseID *kernel.UUID
	guard       guard.ConstructorGuard
}

// NewLine creates an empty line that accepts a single quality mark.
func NewLine(id kernel.UUID, number int, mode CapacityMode, maxCapacity decimal.Decimal) (*Line, error) {
	l := &Line{
		maxQualityTypes: singleQualityType,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setNumber(number),
		l.setMode(mode),
		l.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) Number() int {
	return l.number
}

func (l *Line) Mode() CapacityMode {
	return l.mode
}

func (l *Line) MaxCapacity() decimal.Decimal {
	return l.maxCapacity
}

func (l *Line) MaxQualityTypes() int {
	return l.maxQualityTypes
}

func (l *Line) IsMixedQualityApproved() bool {
	return l.mixedQualityApproved
}

// TypeLabel names what the line stores: "cartons" or "loose packages".
func (l *Line) TypeLabel() string {
	return l.mode.Label()
}

// WarehouseID returns the serial number of the owning warehouse.
func (l *Line) WarehouseID() (kernel.UUID, bool) {
	if l.warehouseID == nil {
		return kernel.UUID{}, false
	}
	return *l.warehouseID, true
}

// Usage is the carton count on a count line and the summed pallet mass on a
// weight line.
func (l *Line) Usage() decimal.Decimal {
	if l.mode == CountCapacity {
		return decimal.NewFromInt(int64(len(l.cartons)))
	}
	total := decimal.Zero
	for _, p := range l.pallets {
		total = total.Add(p.TotalMass())
	}
	return total
}

func (l *Line) AvailableCapacity() decimal.Decimal {
	return l.maxCapacity.Sub(l.Usage())
}

// QualityMarks returns the distinct marks currently stored, sorted.
// An empty pallet still occupies the slot of its own mark.
func (l *Line) QualityMarks() []string {
	set := l.qualityMarkSet()
	marks := make([]string, 0, len(set))
	for mark := range set {
		marks = append(marks, mark)
	}
	slices.Sort(marks)
	return marks
}

// IsMixed reports whether more than one quality mark is stored.
func (l *Line) IsMixed() bool {
	return len(l.qualityMarkSet()) > 1
}

// CanAddQuality reports whether goods of the given mark fit the quality slots.
func (l *Line) CanAddQuality(mark kernel.QualityMark) bool {
	set := l.qualityMarkSet()
	if _, ok := set[mark.String()]; ok {
		return true
	}
	if len(set) >= l.maxQualityTypes {
		return false
	}
	if len(set) >= singleQualityType && !l.mixedQualityApproved {
		return false
	}
	return true
}

// CheckCarton reports whether the carton would be accepted, without changing anything.
func (l *Line) CheckCarton(carton *Package) (Admission, error) {
	if err := carton.Validate(); err != nil {
		return Admitted, errs.NewValueIsRequiredErrorWithCause("carton", err)
	}
	if l.mode != CountCapacity {
		return Admitted, fmt.Errorf("%w: line %d stores %s, not cartons", ErrTypeMismatch, l.number, l.TypeLabel())
	}
	if carton.Kind() != Carton {
		return Admitted, fmt.Errorf("%w: package %s is %s, line %d stores cartons",
			ErrTypeMismatch, carton.ID(), carton.Kind(), l.number)
	}
	if carton.IsDiscarded() {
		return Admitted, fmt.Errorf("%w: %s", ErrPackageDiscarded, carton.ID())
	}
	if l.containsCarton(carton) {
		return AlreadyPresent, nil
	}
	if l.Usage().GreaterThanOrEqual(l.maxCapacity) {
		return CapacityExceeded, nil
	}
	if !l.CanAddQuality(carton.QualityMark()) {
		return QualityRejected, nil
	}
	return Admitted, nil
}

// AddCarton stores a carton and records an "added" history entry.
// A full line or exhausted quality slots return false without an error.
func (l *Line) AddCarton(carton *Package) (bool, error) {
	admission, err := l.CheckCarton(carton)
	if err != nil {
		return false, err
	}
	if admission != Admitted {
		return false, nil
	}
	if err := carton.assignLocation(lineLocation(l.id)); err != nil {
		return false, err
	}
	l.cartons = append(l.cartons, carton)
	l.history = append(l.history, newHistoryEntry(carton, ActionAdded, now()))
	return true, nil
}

// CheckPallet reports whether the pallet would be accepted, without changing anything.
func (l *Line) CheckPallet(pallet *Pallet) (Admission, error) {
	if err := pallet.Validate(); err != nil {
		return Admitted, errs.NewValueIsRequiredErrorWithCause("pallet", err)
	}
	if l.mode != WeightCapacity {
		return Admitted, fmt.Errorf("%w: line %d stores %s, not pallets", ErrTypeMismatch, l.number, l.TypeLabel())
	}
	if l.containsPallet(pallet) {
		return AlreadyPresent, nil
	}
	if l.Usage().Add(pallet.TotalMass()).GreaterThan(l.maxCapacity) {
		return CapacityExceeded, nil
	}
	if !l.CanAddQuality(pallet.QualityMark()) {
		return QualityRejected, nil
	}
	return Admitted, nil
}

// AddPallet stores a pallet and records one "added" entry per contained package.
func (l *Line) AddPallet(pallet *Pallet) (bool, error) {
	admission, err := l.CheckPallet(pallet)
	if err != nil {
		return false, err
	}
	if admission != Admitted {
		return false, nil
	}
	if err := pallet.assignLine(l.id); err != nil {
		return false, err
	}
	l.pallets = append(l.pallets, pallet)
	at := now()
	for _, pkg := range pallet.packages {
		l.history = append(l.history, newHistoryEntry(pkg, ActionAdded, at))
	}
	return true, nil
}

// CheckPalletGrowth reports whether a pallet stored on this line may take extra
// kilograms without the line going over its limit. A pallet stored elsewhere is
// admitted, its own line decides.
func (l *Line) CheckPalletGrowth(pallet *Pallet, extra decimal.Decimal) Admission {
	if !l.containsPallet(pallet) {
		return Admitted
	}
	if l.Usage().Add(extra).GreaterThan(l.maxCapacity) {
		return CapacityExceeded
	}
	return Admitted
}

// RecordPalletChange appends a history entry for a package that joined or left
// a pallet stored on this line. Returns false when the pallet is not here.
func (l *Line) RecordPalletChange(pallet *Pallet, pkg *Package, action Action) bool {
	if pkg == nil || !l.containsPallet(pallet) {
		return false
	}
	l.history = append(l.history, newHistoryEntry(pkg, action, now()))
	return true
}

// RemoveCarton unlinks a stored carton. Returns false when absent.
func (l *Line) RemoveCarton(carton *Package) bool {
	if carton == nil {
		return false
	}
	idx := slices.IndexFunc(l.cartons, carton.IsEqual)
	if idx < 0 {
		return false
	}
	l.cartons = slices.Delete(l.cartons, idx, idx+1)
	carton.clearLocation()
	l.history = append(l.history, newHistoryEntry(carton, ActionRemoved, now()))
	return true
}

// RemovePallet unlinks a stored pallet. Returns false when absent.
func (l *Line) RemovePallet(pallet *Pallet) bool {
	if pallet == nil {
		return false
	}
	idx := slices.IndexFunc(l.pallets, pallet.IsEqual)
	if idx < 0 {
		return false
	}
	l.pallets = slices.Delete(l.pallets, idx, idx+1)
	pallet.clearLine()
	at := now()
	for _, pkg := range pallet.packages {
		l.history = append(l.history, newHistoryEntry(pkg, ActionRemoved, at))
	}
	return true
}

// SetMixedQualityApproval grants maxTypes quality slots, or resets the line
// to a single slot when approval is revoked. Stored goods are never evicted,
// so a line may hold more marks than a narrowed limit allows until it drains.
func (l *Line) SetMixedQualityApproval(approved bool, maxTypes int) error {
	if !approved {
		l.mixedQualityApproved = false
		l.maxQualityTypes = singleQualityType
		return nil
	}
	if maxTypes < singleQualityType {
		return errs.NewValueIsOutOfRangeError("maxTypes", maxTypes, singleQualityType, "unbounded")
	}
	l.mixedQualityApproved = true
	l.maxQualityTypes = maxTypes
	return nil
}

// History returns a copy of the placement log, oldest first.
func (l *Line) History() []HistoryEntry {
	return slices.Clone(l.history)
}

func (l *Line) Cartons() []*Package {
	return slices.Clone(l.cartons)
}

func (l *Line) Pallets() []*Pallet {
	return slices.Clone(l.pallets)
}

// AllPackages returns the cartons followed by the packages of every pallet,
// in pallet order.
func (l *Line) AllPackages() []*Package {
	all := slices.Clone(l.cartons)
	for _, p := range l.pallets {
		all = append(all, p.packages...)
	}
	return all
}

func (l *Line) IsEqual(other *Line) bool {
	if l == nil || other == nil {
		return false
	}
	return l.id.IsEqual(other.id)
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) qualityMarkSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range l.cartons {
		set[c.QualityMark().String()] = struct{}{}
	}
	for _, p := range l.pallets {
		set[p.QualityMark().String()] = struct{}{}
	}
	return set
}

func (l *Line) containsCarton(carton *Package) bool {
	return slices.ContainsFunc(l.cartons, carton.IsEqual)
}

func (l *Line) containsPallet(pallet *Pallet) bool {
	return slices.ContainsFunc(l.pallets, pallet.IsEqual)
}

func (l *Line) assignWarehouse(warehouseID kernel.UUID) error {
	if l.warehouseID != nil && !l.warehouseID.IsEqual(warehouseID) {
		return fmt.Errorf("%w: line %d belongs to warehouse %s", ErrAlreadyPlaced, l.number, *l.warehouseID)
	}
	l.warehouseID = &warehouseID
	return nil
}

func (l *Line) clearWarehouse() {
	l.warehouseID = nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setNumber(number int) error {
	if number <= 0 {
		return ErrLineNumberIsInvalid
	}
	l.number = number
	return nil
}

func (l *Line) setMode(mode CapacityMode) error {
	if mode != CountCapacity && mode != WeightCapacity {
		return errs.NewValueIsInvalidError("capacityMode")
	}
	l.mode = mode
	return nil
}

func (l *Line) setMaxCapacity(maxCapacity decimal.Decimal) error {
	if !maxCapacity.IsPositive() {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity.String(), "0 (exclusive)", "unbounded")
	}
	l.maxCapacity = maxCapacity
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
