package queries

import (
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// PackageResponse describes a package and where it is stored.
// LocationKind is empty and LocationID nil for packages that are not stored.
type PackageResponse struct {
	ID           kernel.UUID
	Type         string
	QualityMark  string
	Mass         decimal.Decimal
	CreatedAt    time.Time
	Discarded    bool
	LocationKind string
	LocationID   *kernel.UUID
}

type PalletResponse struct {
	ID           kernel.UUID
	QualityMark  string
	MaxCapacity  int
	PackageCount int
	TotalMass    decimal.Decimal
	CreatedAt    time.Time
	LineID       *kernel.UUID
}

type WarehouseResponse struct {
	ID                    kernel.UUID
	Name                  string
	MaxCapacity           decimal.Decimal
	Usage                 decimal.Decimal
	AvailableCapacity     decimal.Decimal
	UtilizationPercentage float64
	LineCount             int
	CreatedAt             time.Time
}

// PackageSearchResponse places a found package in its warehouse. PalletID is
// set for loose packages.
type PackageSearchResponse struct {
	Package       PackageResponse
	WarehouseID   kernel.UUID
	WarehouseName string
	LineID        kernel.UUID
	LineNumber    int
	PalletID      *kernel.UUID
}

type PalletSearchResponse struct {
	Pallet        PalletResponse
	WarehouseID   kernel.UUID
	WarehouseName string
	LineID        kernel.UUID
	LineNumber    int
}

type DashboardResponse struct {
	services.Statistics
	OffloadOrder string
}

func newPackageResponse(pkg *inventory.Package) PackageResponse {
	resp := PackageResponse{
		ID:          pkg.ID(),
		Type:        pkg.Kind().String(),
		QualityMark: pkg.QualityMark().String(),
		Mass:        pkg.Mass().Decimal(),
		CreatedAt:   pkg.CreatedAt(),
		Discarded:   pkg.IsDiscarded(),
	}
	if loc, ok := pkg.Location(); ok {
		id := loc.ID()
		resp.LocationKind = loc.Kind().String()
		resp.LocationID = &id
	}
	return resp
}

func newPalletResponse(p *inventory.Pallet) PalletResponse {
	resp := PalletResponse{
		ID:           p.ID(),
		QualityMark:  p.QualityMark().String(),
		MaxCapacity:  p.MaxCapacity(),
		PackageCount: p.CurrentCount(),
		TotalMass:    p.TotalMass(),
		CreatedAt:    p.CreatedAt(),
	}
	if lineID, ok := p.LineID(); ok {
		resp.LineID = &lineID
	}
	return resp
}

func newWarehouseResponse(w *inventory.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:                    w.ID(),
		Name:                  w.Name(),
		MaxCapacity:           w.MaxCapacity(),
		Usage:                 w.Usage(),
		AvailableCapacity:     w.AvailableCapacity(),
		UtilizationPercentage: w.UtilizationPercentage(),
		LineCount:             len(w.Lines()),
		CreatedAt:             w.CreatedAt(),
	}
}

func newPackageResponses(pkgs []*inventory.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, newPackageResponse(pkg))
	}
	return out
}
