// Package queries contains read operations for retrieving inventory state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return plain read models copied out of the domain while the unit of
// work is held, so callers never touch live entities.
package queries

import (
	"context"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

type (
	// ReadTx guards a read. Queries never commit.
	ReadTx interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW is a read-only unit of work around the inventory.
	UoW interface {
		ReadTx
		LogisticsManager() *services.LogisticsManager
	}

	UoWFactory interface {
		Create() UoW
	}
)

// read runs fn inside a unit of work and releases it afterwards.
func read[T any](ctx context.Context, factory UoWFactory, fn func(*services.LogisticsManager) (T, error)) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow.LogisticsManager())
}

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
