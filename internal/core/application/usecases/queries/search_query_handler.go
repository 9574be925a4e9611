package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

type SearchPackageQueryHandler struct {
	uowFactory UoWFactory
}

func NewSearchPackageQueryHandler(uowFactory UoWFactory) SearchPackageQueryHandler {
	return SearchPackageQueryHandler{uowFactory: uowFactory}
}

// Handle returns nil when no warehouse stores the package.
func (h SearchPackageQueryHandler) Handle(ctx context.Context, query SearchPackageQuery) (*PackageSearchResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	serial, err := kernel.UUIDFromString(query.Serial())
	if err != nil {
		return nil, nil //nolint:nilnil // an unparsable serial is a miss
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) (*PackageSearchResponse, error) {
		match, found := m.SearchPackage(serial)
		if !found {
			return nil, nil //nolint:nilnil // not found
		}
		resp := &PackageSearchResponse{
			Package:       newPackageResponse(match.Package),
			WarehouseID:   match.Warehouse.ID(),
			WarehouseName: match.Warehouse.Name(),
			LineID:        match.Line.ID(),
			LineNumber:    match.Line.Number(),
		}
		if match.Pallet != nil {
			palletID := match.Pallet.ID()
			resp.PalletID = &palletID
		}
		return resp, nil
	})
}

type SearchPalletQueryHandler struct {
	uowFactory UoWFactory
}

func NewSearchPalletQueryHandler(uowFactory UoWFactory) SearchPalletQueryHandler {
	return SearchPalletQueryHandler{uowFactory: uowFactory}
}

// Handle returns nil when no line holds the pallet.
func (h SearchPalletQueryHandler) Handle(ctx context.Context, query SearchPalletQuery) (*PalletSearchResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	serial, err := kernel.UUIDFromString(query.Serial())
	if err != nil {
		return nil, nil //nolint:nilnil // an unparsable serial is a miss
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) (*PalletSearchResponse, error) {
		match, found := m.SearchPallet(serial)
		if !found {
			return nil, nil //nolint:nilnil // not found
		}
		return &PalletSearchResponse{
			Pallet:        newPalletResponse(match.Pallet),
			WarehouseID:   match.Warehouse.ID(),
			WarehouseName: match.Warehouse.Name(),
			LineID:        match.Line.ID(),
			LineNumber:    match.Line.Number(),
		}, nil
	})
}
