package inventory

import (
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// HistoryEntry is one placement or removal of a package on a line.
// Pallet moves produce one entry per contained package.
type HistoryEntry struct {
	PackageID   kernel.UUID
	QualityMark string
	Mass        decimal.Decimal
	Action      Action
	Timestamp   time.Time
}

func newHistoryEntry(pkg *Package, action Action, at time.Time) HistoryEntry {
	return HistoryEntry{
		PackageID:   pkg.ID(),
		QualityMark: pkg.QualityMark().String(),
		Mass:        pkg.Mass().Decimal(),
		Action:      action,
		Timestamp:   at,
	}
}
