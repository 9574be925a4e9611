package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// CreateWarehouseCommandHandler creates and registers an empty warehouse.
type CreateWarehouseCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateWarehouseCommandHandler(uowFactory UoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the serial number of the new warehouse.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouse, err := uow.LogisticsManager().CreateWarehouse(cmd.Name(), cmd.MaxCapacity())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return warehouse.ID(), nil
}
