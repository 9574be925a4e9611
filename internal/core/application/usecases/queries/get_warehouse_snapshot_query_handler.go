package queries

import (
	"context"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/services"
)

type GetWarehouseSnapshotQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetWarehouseSnapshotQueryHandler(uowFactory UoWFactory) GetWarehouseSnapshotQueryHandler {
	return GetWarehouseSnapshotQueryHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for an unknown warehouse.
func (h GetWarehouseSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseSnapshotQuery,
) (inventory.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return inventory.Snapshot{}, err
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) (inventory.Snapshot, error) {
		w, err := findWarehouse(m, query.WarehouseID())
		if err != nil {
			return inventory.Snapshot{}, err
		}
		snap, _ := m.WarehouseSnapshot(w)
		return snap, nil
	})
}
