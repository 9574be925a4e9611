package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

type GetOffloadQueueQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetOffloadQueueQueryHandler(uowFactory UoWFactory) GetOffloadQueueQueryHandler {
	return GetOffloadQueueQueryHandler{uowFactory: uowFactory}
}

func (h GetOffloadQueueQueryHandler) Handle(ctx context.Context, query GetOffloadQueueQuery) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) ([]PackageResponse, error) {
		var source services.PackageSource
		if query.Scope() == WarehouseScope {
			w, err := findWarehouse(m, query.ID())
			if err != nil {
				return nil, err
			}
			source = w
		} else {
			line, err := findLine(m, query.ID())
			if err != nil {
				return nil, err
			}
			source = line
		}
		return newPackageResponses(m.PackagesForOffloading(source)), nil
	})
}
