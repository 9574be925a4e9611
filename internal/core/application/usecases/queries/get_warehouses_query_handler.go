package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

type GetWarehousesQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetWarehousesQueryHandler(uowFactory UoWFactory) GetWarehousesQueryHandler {
	return GetWarehousesQueryHandler{uowFactory: uowFactory}
}

// Handle returns the warehouses in registration order.
func (h GetWarehousesQueryHandler) Handle(ctx context.Context, query GetWarehousesQuery) ([]WarehouseResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) ([]WarehouseResponse, error) {
		warehouses := m.Warehouses()
		out := make([]WarehouseResponse, 0, len(warehouses))
		for _, w := range warehouses {
			out = append(out, newWarehouseResponse(w))
		}
		return out, nil
	})
}
