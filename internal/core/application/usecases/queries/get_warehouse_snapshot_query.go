package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetWarehouseSnapshotQueryIsNotConstructed = errors.New(
	"GetWarehouseSnapshotQuery must be created via NewGetWarehouseSnapshotQuery constructor",
)

// GetWarehouseSnapshotQuery reports the lines, pallets and packages of one warehouse.
type GetWarehouseSnapshotQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWarehouseSnapshotQuery(warehouseID kernel.UUID) (GetWarehouseSnapshotQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetWarehouseSnapshotQuery{}, err
	}
	return GetWarehouseSnapshotQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetWarehouseSnapshotQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

func (q GetWarehouseSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseSnapshotQueryIsNotConstructed)
}
