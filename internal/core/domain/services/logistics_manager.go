package services

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ErrRegistryIsRequired is returned by NewLogisticsManager without a registry.
var ErrRegistryIsRequired = errs.NewValueIsRequiredError("registry")

// Clock returns the current time; it stamps every entity created by the manager.
type Clock func() time.Time

// PackageSource is a location that can enumerate its packages: a Warehouse or a Line.
type PackageSource interface {
	AllPackages() []*inventory.Package
}

// Statistics are the dashboard totals over all registered warehouses.
type Statistics struct {
	Warehouses            int
	Lines                 int
	Packages              int
	Pallets               int
	TotalCapacity         decimal.Decimal
	UsedCapacity          decimal.Decimal
	UtilizationPercentage float64
}

// LogisticsManager orchestrates placement and removal of goods across
// warehouses, lines and pallets.
//
// Every entity passed to a manager operation is registered first, so that
// back-links can later be resolved through the Registry. Placement operations
// return a plain boolean: a kind or quality error, a full container and an
// exhausted quality slot all read as false at the call site, and the reason is
// logged.
//
// LogisticsManager is not safe for concurrent use; callers serialize access.
//
// Example usage:
//
//	manager, _ := services.NewLogisticsManager(inventory.NewRegistry(), time.Now, slog.Default())
//	line, _ := manager.CreateLine(1, decimal.NewFromInt(20), inventory.CountCapacity)
//	carton, _ := manager.CreatePackage(inventory.Carton, "A", decimal.NewFromInt(5))
//	if !manager.LoadPackageToLine(carton, line) {
//	    // rejected, see the log for the reason
//	}
type LogisticsManager struct {
	registry     *inventory.Registry
	offloadOrder OffloadOrder
	clock        Clock
	logger       *slog.Logger
}

// NewLogisticsManager creates a manager with the oldest_first policy. A nil
// clock falls back to time.Now and a nil logger to slog.Default().
func NewLogisticsManager(registry *inventory.Registry, clock Clock, logger *slog.Logger) (*LogisticsManager, error) {
	if registry == nil {
		return nil, ErrRegistryIsRequired
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LogisticsManager{
		registry:     registry,
		offloadOrder: OldestFirst,
		clock:        clock,
		logger:       logger.With("component", "LogisticsManager"),
	}, nil
}

// CreateWarehouse builds and registers an empty warehouse.
func (m *LogisticsManager) CreateWarehouse(name string, maxCapacity decimal.Decimal) (*inventory.Warehouse, error) {
	w, err := inventory.NewWarehouse(kernel.NewUUID(), name, maxCapacity, m.now())
	if err != nil {
		return nil, err
	}
	m.RegisterWarehouse(w)
	return w, nil
}

// CreateLine builds and registers a detached line.
func (m *LogisticsManager) CreateLine(
	number int,
	maxCapacity decimal.Decimal,
	mode inventory.CapacityMode,
) (*inventory.Line, error) {
	line, err := inventory.NewLine(kernel.NewUUID(), number, mode, maxCapacity)
	if err != nil {
		return nil, err
	}
	m.RegisterLine(line)
	return line, nil
}

// AddLineToWarehouse attaches a line to a warehouse.
func (m *LogisticsManager) AddLineToWarehouse(w *inventory.Warehouse, line *inventory.Line) error {
	if err := w.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouse", err)
	}
	m.RegisterWarehouse(w)
	m.RegisterLine(line)
	return w.AddLine(line)
}

// CreatePackage builds and registers a free-standing package.
func (m *LogisticsManager) CreatePackage(
	kind inventory.Kind,
	qualityMark string,
	mass decimal.Decimal,
) (*inventory.Package, error) {
	mark, markErr := kernel.NewQualityMark(qualityMark)
	weight, massErr := kernel.NewMass(mass)
	if err := errors.Join(markErr, massErr); err != nil {
		return nil, err
	}
	pkg, err := inventory.NewPackage(kernel.NewUUID(), kind, mark, weight, m.now())
	if err != nil {
		return nil, err
	}
	m.RegisterPackage(pkg)
	return pkg, nil
}

// CreatePallet builds and registers an empty pallet.
func (m *LogisticsManager) CreatePallet(qualityMark string, maxCapacity int) (*inventory.Pallet, error) {
	mark, err := kernel.NewQualityMark(qualityMark)
	if err != nil {
		return nil, err
	}
	pallet, err := inventory.NewPallet(kernel.NewUUID(), mark, maxCapacity, m.now())
	if err != nil {
		return nil, err
	}
	m.RegisterPallet(pallet)
	return pallet, nil
}

// RegisterWarehouse registers a warehouse together with its lines and their contents.
func (m *LogisticsManager) RegisterWarehouse(w *inventory.Warehouse) {
	if !m.registry.RegisterWarehouse(w) {
		return
	}
	for _, line := range w.Lines() {
		m.RegisterLine(line)
	}
}

// RegisterLine registers a line together with its cartons and pallets.
func (m *LogisticsManager) RegisterLine(line *inventory.Line) {
	if !m.registry.RegisterLine(line) {
		return
	}
	for _, carton := range line.Cartons() {
		m.registry.RegisterPackage(carton)
	}
	for _, pallet := range line.Pallets() {
		m.RegisterPallet(pallet)
	}
}

// RegisterPallet registers a pallet together with its packages.
func (m *LogisticsManager) RegisterPallet(pallet *inventory.Pallet) {
	if !m.registry.RegisterPallet(pallet) {
		return
	}
	for _, pkg := range pallet.Packages() {
		m.registry.RegisterPackage(pkg)
	}
}

func (m *LogisticsManager) RegisterPackage(pkg *inventory.Package) {
	m.registry.RegisterPackage(pkg)
}

// LoadPackageToLine places a carton on a count line, moving it from its
// current line if needed. Loose packages have to go through a pallet and are
// refused with false.
func (m *LogisticsManager) LoadPackageToLine(pkg *inventory.Package, line *inventory.Line) bool {
	const op = "load package to line"
	if pkg.Validate() != nil || line.Validate() != nil {
		m.logger.Warn(op+" rejected", "reason", "package and line are required")
		return false
	}
	m.RegisterPackage(pkg)
	m.RegisterLine(line)
	attrs := []any{"package", pkg.ID().String(), "line", line.ID().String()}

	if pkg.Kind() != inventory.Carton {
		m.logger.Warn(op+" rejected", append(attrs, "reason", "loose packages must be loaded to a pallet first")...)
		return false
	}
	admission, err := line.CheckCarton(pkg)
	if !m.admitted(op, admission, err, attrs) {
		return false
	}
	if err := m.detachPackage(pkg); err != nil {
		m.logger.Error(op+" failed", append(attrs, "error", err)...)
		return false
	}
	ok, err := line.AddCarton(pkg)
	return m.added(op, ok, err, attrs)
}

// LoadPackageToPallet places a loose package on a pallet, moving it from its
// current pallet if needed.
func (m *LogisticsManager) LoadPackageToPallet(pkg *inventory.Package, pallet *inventory.Pallet) bool {
	const op = "load package to pallet"
	if pkg.Validate() != nil || pallet.Validate() != nil {
		m.logger.Warn(op+" rejected", "reason", "package and pallet are required")
		return false
	}
	m.RegisterPackage(pkg)
	m.RegisterPallet(pallet)
	attrs := []any{"package", pkg.ID().String(), "pallet", pallet.ID().String()}

	admission, err := pallet.CheckPackage(pkg)
	if !m.admitted(op, admission, err, attrs) {
		return false
	}
	line, onLine := m.palletLine(pallet)
	if onLine && !m.admitted(op, line.CheckPalletGrowth(pallet, m.massJoining(pkg, line)), nil, attrs) {
		return false
	}
	if err := m.detachPackage(pkg); err != nil {
		m.logger.Error(op+" failed", append(attrs, "error", err)...)
		return false
	}
	ok, err := pallet.AddPackage(pkg)
	if !m.added(op, ok, err, attrs) {
		return false
	}
	if onLine {
		line.RecordPalletChange(pallet, pkg, inventory.ActionAdded)
	}
	return true
}

// LoadPalletToLine places a pallet on a weight line, moving it from its
// current line if needed.
func (m *LogisticsManager) LoadPalletToLine(pallet *inventory.Pallet, line *inventory.Line) bool {
	const op = "load pallet to line"
	if pallet.Validate() != nil || line.Validate() != nil {
		m.logger.Warn(op+" rejected", "reason", "pallet and line are required")
		return false
	}
	m.RegisterPallet(pallet)
	m.RegisterLine(line)
	attrs := []any{"pallet", pallet.ID().String(), "line", line.ID().String()}

	admission, err := line.CheckPallet(pallet)
	if !m.admitted(op, admission, err, attrs) {
		return false
	}
	if err := m.detachPallet(pallet); err != nil {
		m.logger.Error(op+" failed", append(attrs, "error", err)...)
		return false
	}
	ok, err := line.AddPallet(pallet)
	return m.added(op, ok, err, attrs)
}

// OffloadPackage removes a package from its container: a carton from its
// line, a loose package from its pallet. The pallet itself stays on its line.
// Returns false when the package is not stored anywhere.
func (m *LogisticsManager) OffloadPackage(pkg *inventory.Package) bool {
	if pkg.Validate() != nil {
		return false
	}
	m.RegisterPackage(pkg)
	if _, located := pkg.Location(); !located {
		return false
	}
	if err := m.detachPackage(pkg); err != nil {
		m.logger.Error("offload package failed", "package", pkg.ID().String(), "error", err)
		return false
	}
	return true
}

// OffloadPallet removes a pallet from its line. Returns false when the pallet
// is not on a line.
func (m *LogisticsManager) OffloadPallet(pallet *inventory.Pallet) bool {
	if pallet.Validate() != nil {
		return false
	}
	m.RegisterPallet(pallet)
	if _, onLine := pallet.LineID(); !onLine {
		return false
	}
	if err := m.detachPallet(pallet); err != nil {
		m.logger.Error("offload pallet failed", "pallet", pallet.ID().String(), "error", err)
		return false
	}
	return true
}

// DiscardPackage detaches a package from its container and marks it
// discarded. It always reports true; failures are logged.
func (m *LogisticsManager) DiscardPackage(pkg *inventory.Package) bool {
	if pkg.Validate() != nil {
		m.logger.Warn("discard package ignored", "reason", "package is required")
		return true
	}
	m.RegisterPackage(pkg)
	if err := m.detachPackage(pkg); err != nil {
		m.logger.Error("discard package: detach failed", "package", pkg.ID().String(), "error", err)
	}
	if err := pkg.Discard(); err != nil {
		m.logger.Error("discard package failed", "package", pkg.ID().String(), "error", err)
	}
	return true
}

// SetOffloadOrder switches the global policy. Unknown values return false and
// leave the policy unchanged.
func (m *LogisticsManager) SetOffloadOrder(order string) bool {
	parsed, ok := ParseOffloadOrder(order)
	if !ok {
		m.logger.Warn("unknown offload order", "order", order)
		return false
	}
	m.offloadOrder = parsed
	return true
}

func (m *LogisticsManager) OffloadOrder() OffloadOrder {
	return m.offloadOrder
}

// ApproveMixedQualityLine allows up to maxTypes distinct quality marks on the line.
func (m *LogisticsManager) ApproveMixedQualityLine(line *inventory.Line, maxTypes int) bool {
	if line.Validate() != nil {
		return false
	}
	m.RegisterLine(line)
	if err := line.SetMixedQualityApproval(true, maxTypes); err != nil {
		m.logger.Warn("approve mixed quality rejected", "line", line.ID().String(), "reason", err.Error())
		return false
	}
	return true
}

// PackagesForOffloading lists the packages of a warehouse or line sorted by
// creation time according to the current policy. Packages created at the same
// instant keep their storage order.
func (m *LogisticsManager) PackagesForOffloading(source PackageSource) []*inventory.Package {
	if source == nil {
		return nil
	}
	packages := source.AllPackages()
	slices.SortStableFunc(packages, func(a, b *inventory.Package) int {
		if m.offloadOrder == NewestFirst {
			return b.CreatedAt().Compare(a.CreatedAt())
		}
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return packages
}

func (m *LogisticsManager) LineHistory(line *inventory.Line) []inventory.HistoryEntry {
	if line.Validate() != nil {
		return nil
	}
	return line.History()
}

func (m *LogisticsManager) WarehouseSnapshot(w *inventory.Warehouse) (inventory.Snapshot, bool) {
	if w.Validate() != nil {
		return inventory.Snapshot{}, false
	}
	return w.Snapshot(), true
}

// SearchPackage scans the registered warehouses in registration order.
func (m *LogisticsManager) SearchPackage(serial kernel.UUID) (inventory.PackageMatch, bool) {
	for _, w := range m.registry.Warehouses() {
		if match, found := w.SearchPackage(serial); found {
			return match, true
		}
	}
	return inventory.PackageMatch{}, false
}

// SearchPallet scans the registered warehouses in registration order.
func (m *LogisticsManager) SearchPallet(serial kernel.UUID) (inventory.PalletMatch, bool) {
	for _, w := range m.registry.Warehouses() {
		if match, found := w.SearchPallet(serial); found {
			return match, true
		}
	}
	return inventory.PalletMatch{}, false
}

func (m *LogisticsManager) Warehouse(id kernel.UUID) (*inventory.Warehouse, bool) {
	return m.registry.Warehouse(id)
}

func (m *LogisticsManager) Line(id kernel.UUID) (*inventory.Line, bool) {
	return m.registry.Line(id)
}

func (m *LogisticsManager) Pallet(id kernel.UUID) (*inventory.Pallet, bool) {
	return m.registry.Pallet(id)
}

func (m *LogisticsManager) Package(id kernel.UUID) (*inventory.Package, bool) {
	return m.registry.Package(id)
}

func (m *LogisticsManager) Warehouses() []*inventory.Warehouse {
	return m.registry.Warehouses()
}

func (m *LogisticsManager) Lines() []*inventory.Line {
	return m.registry.Lines()
}

func (m *LogisticsManager) Pallets() []*inventory.Pallet {
	return m.registry.Pallets()
}

func (m *LogisticsManager) Packages() []*inventory.Package {
	return m.registry.Packages()
}

// Statistics totals capacity over the registered warehouses. Lines are
// counted through their warehouses, packages and pallets through the registry.
func (m *LogisticsManager) Statistics() Statistics {
	stats := Statistics{
		Packages:      len(m.registry.Packages()),
		Pallets:       len(m.registry.Pallets()),
		TotalCapacity: decimal.Zero,
		UsedCapacity:  decimal.Zero,
	}
	for _, w := range m.registry.Warehouses() {
		stats.Warehouses++
		stats.Lines += len(w.Lines())
		stats.TotalCapacity = stats.TotalCapacity.Add(w.MaxCapacity())
		stats.UsedCapacity = stats.UsedCapacity.Add(w.Usage())
	}
	if stats.TotalCapacity.IsPositive() {
		stats.UtilizationPercentage = stats.UsedCapacity.Div(stats.TotalCapacity).Mul(hundred).Round(2).InexactFloat64()
	}
	return stats
}

// Summary is the aggregate state recorded after every mutation.
func (m *LogisticsManager) Summary() inventory.StateSummary {
	return m.registry.Summary(m.now())
}

func (m *LogisticsManager) now() time.Time {
	return m.clock().UTC()
}

// detachPackage removes the package from the container its back-link points at.
func (m *LogisticsManager) detachPackage(pkg *inventory.Package) error {
	location, located := pkg.Location()
	if !located {
		return nil
	}
	switch location.Kind() {
	case inventory.LineLocation:
		line, found := m.registry.Line(location.ID())
		if !found || !line.RemoveCarton(pkg) {
			return fmt.Errorf("package %s: %w", pkg.ID(), errs.NewObjectNotFoundError("line", location.ID().String()))
		}
	case inventory.PalletLocation:
		pallet, found := m.registry.Pallet(location.ID())
		if !found || !pallet.RemovePackage(pkg) {
			return fmt.Errorf("package %s: %w", pkg.ID(), errs.NewObjectNotFoundError("pallet", location.ID().String()))
		}
		if line, onLine := m.palletLine(pallet); onLine {
			line.RecordPalletChange(pallet, pkg, inventory.ActionRemoved)
		}
	}
	return nil
}

func (m *LogisticsManager) palletLine(pallet *inventory.Pallet) (*inventory.Line, bool) {
	lineID, onLine := pallet.LineID()
	if !onLine {
		return nil, false
	}
	return m.registry.Line(lineID)
}

// massJoining is the mass a package adds to line. A package moving between two
// pallets of the same line is already counted there.
func (m *LogisticsManager) massJoining(pkg *inventory.Package, line *inventory.Line) decimal.Decimal {
	location, located := pkg.Location()
	if !located || location.Kind() != inventory.PalletLocation {
		return pkg.Mass().Decimal()
	}
	from, found := m.registry.Pallet(location.ID())
	if !found {
		return pkg.Mass().Decimal()
	}
	if fromLine, onLine := from.LineID(); onLine && fromLine.IsEqual(line.ID()) {
		return decimal.Zero
	}
	return pkg.Mass().Decimal()
}

func (m *LogisticsManager) detachPallet(pallet *inventory.Pallet) error {
	lineID, onLine := pallet.LineID()
	if !onLine {
		return nil
	}
	line, found := m.registry.Line(lineID)
	if !found || !line.RemovePallet(pallet) {
		return fmt.Errorf("pallet %s: %w", pallet.ID(), errs.NewObjectNotFoundError("line", lineID.String()))
	}
	return nil
}

func (m *LogisticsManager) admitted(op string, admission inventory.Admission, err error, attrs []any) bool {
	if err != nil {
		m.logger.Warn(op+" rejected", append(attrs, "reason", err.Error())...)
		return false
	}
	if admission != inventory.Admitted {
		m.logger.Info(op+" rejected", append(attrs, "reason", admission.String())...)
		return false
	}
	return true
}

func (m *LogisticsManager) added(op string, ok bool, err error, attrs []any) bool {
	if err != nil {
		m.logger.Error(op+" failed", append(attrs, "error", err)...)
		return false
	}
	return ok
}
