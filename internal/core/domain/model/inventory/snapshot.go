package inventory

import (
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Snapshot is a read-only report of a warehouse at one moment.
type Snapshot struct {
	WarehouseID           kernel.UUID
	Name                  string
	Usage                 decimal.Decimal
	MaxCapacity           decimal.Decimal
	UtilizationPercentage float64
	TotalPackages         int
	Lines                 []LineSnapshot
}

// LineSnapshot lists cartons and pallet packages in one flat Packages list,
// with a separate summary per pallet.
type LineSnapshot struct {
	LineID       kernel.UUID
	Number       int
	Usage        decimal.Decimal
	MaxCapacity  decimal.Decimal
	Type         string
	QualityMarks []string
	Packages     []PackageSnapshot
	Pallets      []PalletSnapshot
}

type PackageSnapshot struct {
	Serial      kernel.UUID
	Kind        Kind
	QualityMark string
	Mass        decimal.Decimal
	CreatedAt   time.Time
	// PalletID is set for packages stored in a pallet.
	PalletID *kernel.UUID
}

type PalletSnapshot struct {
	Serial       kernel.UUID
	QualityMark  string
	PackageCount int
	MaxCapacity  int
	TotalMass    decimal.Decimal
}

// Snapshot builds the warehouse report. TotalPackages is the sum of the
// per-line package counts.
func (w *Warehouse) Snapshot() Snapshot {
	snap := Snapshot{
		WarehouseID:           w.id,
		Name:                  w.name,
		Usage:                 w.Usage(),
		MaxCapacity:           w.maxCapacity,
		UtilizationPercentage: w.UtilizationPercentage(),
		Lines:                 make([]LineSnapshot, 0, len(w.lines)),
	}
	for _, l := range w.lines {
		ls := l.snapshot()
		snap.TotalPackages += len(ls.Packages)
		snap.Lines = append(snap.Lines, ls)
	}
	return snap
}

func (l *Line) snapshot() LineSnapshot {
	ls := LineSnapshot{
		LineID:       l.id,
		Number:       l.number,
		Usage:        l.Usage(),
		MaxCapacity:  l.maxCapacity,
		Type:         l.TypeLabel(),
		QualityMarks: l.QualityMarks(),
		Packages:     []PackageSnapshot{},
		Pallets:      []PalletSnapshot{},
	}
	for _, c := range l.cartons {
		ls.Packages = append(ls.Packages, packageSnapshot(c, nil))
	}
	for _, p := range l.pallets {
		palletID := p.id
		for _, pkg := range p.packages {
			ls.Packages = append(ls.Packages, packageSnapshot(pkg, &palletID))
		}
		ls.Pallets = append(ls.Pallets, PalletSnapshot{
			Serial:       p.id,
			QualityMark:  p.qualityMark.String(),
			PackageCount: p.CurrentCount(),
			MaxCapacity:  p.maxCapacity,
			TotalMass:    p.TotalMass(),
		})
	}
	return ls
}

func packageSnapshot(pkg *Package, palletID *kernel.UUID) PackageSnapshot {
	return PackageSnapshot{
		Serial:      pkg.id,
		Kind:        pkg.kind,
		QualityMark: pkg.qualityMark.String(),
		Mass:        pkg.mass.Decimal(),
		CreatedAt:   pkg.createdAt,
		PalletID:    palletID,
	}
}
