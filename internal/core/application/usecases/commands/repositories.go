// Package commands contains business operations that modify the inventory.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, unit of work, and a
// state summary recorded on commit.
package commands

import (
	"context"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// Unit of Work interfaces give command handlers exclusive access to the inventory.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ManagerProvider exposes the logistics manager within a unit of work.
	ManagerProvider interface {
		LogisticsManager() *services.LogisticsManager
	}

	// UoW is a unit of work around the inventory.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   manager := uow.LogisticsManager()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ManagerProvider
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

func findWarehouse(m *services.LogisticsManager, id kernel.UUID) (*inventory.Warehouse, error) {
	w, ok := m.Warehouse(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("warehouseId", id.String())
	}
	return w, nil
}

func findLine(m *services.LogisticsManager, id kernel.UUID) (*inventory.Line, error) {
	line, ok := m.Line(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("lineId", id.String())
	}
	return line, nil
}

func findPallet(m *services.LogisticsManager, id kernel.UUID) (*inventory.Pallet, error) {
	pallet, ok := m.Pallet(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("palletId", id.String())
	}
	return pallet, nil
}

func findPackage(m *services.LogisticsManager, id kernel.UUID) (*inventory.Package, error) {
	pkg, ok := m.Package(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("packageId", id.String())
	}
	return pkg, nil
}
