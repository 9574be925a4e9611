package http

import (
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/google/uuid"
)

func toAPIID(id kernel.UUID) uuid.UUID {
	return id.Bytes()
}

func toAPIIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toWarehouse(w queries.WarehouseResponse) servers.Warehouse {
	return servers.Warehouse{
		Id:                    toAPIID(w.ID),
		Name:                  w.Name,
		MaxCapacity:           w.MaxCapacity.InexactFloat64(),
		Usage:                 w.Usage.InexactFloat64(),
		AvailableCapacity:     w.AvailableCapacity.InexactFloat64(),
		UtilizationPercentage: w.UtilizationPercentage,
		LineCount:             w.LineCount,
		CreatedAt:             w.CreatedAt,
	}
}

func toPackage(p queries.PackageResponse) servers.Package {
	resp := servers.Package{
		Id:          toAPIID(p.ID),
		Type:        p.Type,
		QualityMark: p.QualityMark,
		Mass:        p.Mass.InexactFloat64(),
		CreatedAt:   p.CreatedAt,
		Discarded:   p.Discarded,
	}
	if p.LocationID != nil {
		resp.Location = &servers.Location{Kind: p.LocationKind, Id: toAPIID(*p.LocationID)}
	}
	return resp
}

func toPackages(pkgs []queries.PackageResponse) []servers.Package {
	out := make([]servers.Package, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, toPackage(p))
	}
	return out
}

func toPallet(p queries.PalletResponse) servers.Pallet {
	return servers.Pallet{
		Id:           toAPIID(p.ID),
		QualityMark:  p.QualityMark,
		MaxCapacity:  p.MaxCapacity,
		PackageCount: p.PackageCount,
		TotalMass:    p.TotalMass.InexactFloat64(),
		CreatedAt:    p.CreatedAt,
		LineId:       toAPIIDPtr(p.LineID),
	}
}

func toSnapshot(s inventory.Snapshot) servers.WarehouseSnapshot {
	resp := servers.WarehouseSnapshot{
		WarehouseId:           toAPIID(s.WarehouseID),
		Name:                  s.Name,
		Usage:                 s.Usage.InexactFloat64(),
		MaxCapacity:           s.MaxCapacity.InexactFloat64(),
		UtilizationPercentage: s.UtilizationPercentage,
		TotalPackages:         s.TotalPackages,
		Lines:                 make([]servers.LineSnapshot, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		ls := servers.LineSnapshot{
			LineId:       toAPIID(l.LineID),
			LineNumber:   l.Number,
			Usage:        l.Usage.InexactFloat64(),
			MaxCapacity:  l.MaxCapacity.InexactFloat64(),
			Type:         l.Type,
			QualityMarks: l.QualityMarks,
			Packages:     make([]servers.PackageSnapshot, 0, len(l.Packages)),
			Pallets:      make([]servers.PalletSnapshot, 0, len(l.Pallets)),
		}
		for _, p := range l.Packages {
			ls.Packages = append(ls.Packages, servers.PackageSnapshot{
				Serial:      toAPIID(p.Serial),
				Type:        p.Kind.String(),
				QualityMark: p.QualityMark,
				Mass:        p.Mass.InexactFloat64(),
				CreatedAt:   p.CreatedAt,
				PalletId:    toAPIIDPtr(p.PalletID),
			})
		}
		for _, p := range l.Pallets {
			ls.Pallets = append(ls.Pallets, servers.PalletSnapshot{
				Serial:       toAPIID(p.Serial),
				QualityMark:  p.QualityMark,
				PackageCount: p.PackageCount,
				MaxCapacity:  p.MaxCapacity,
				TotalMass:    p.TotalMass.InexactFloat64(),
			})
		}
		resp.Lines = append(resp.Lines, ls)
	}
	return resp
}

func toHistory(entries []inventory.HistoryEntry) []servers.HistoryEntry {
	out := make([]servers.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, servers.HistoryEntry{
			PackageId:   toAPIID(e.PackageID),
			QualityMark: e.QualityMark,
			Mass:        e.Mass.InexactFloat64(),
			Action:      string(e.Action),
			Timestamp:   e.Timestamp,
		})
	}
	return out
}

func toStateSummary(s inventory.StateSummary) servers.StateSummary {
	return servers.StateSummary{
		RecordedAt: s.RecordedAt,
		Warehouses: s.Warehouses,
		Lines:      s.Lines,
		Packages:   s.Packages,
		Pallets:    s.Pallets,
	}
}
