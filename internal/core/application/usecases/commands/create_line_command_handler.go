package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// CreateLineCommandHandler creates a line and attaches it to an existing warehouse.
type CreateLineCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateLineCommandHandler(uowFactory UoWFactory) CreateLineCommandHandler {
	return CreateLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the serial number of the new line, or an ObjectNotFoundError
// when the warehouse is unknown.
func (h *CreateLineCommandHandler) Handle(ctx context.Context, cmd CreateLineCommand) (kernel.UUID, error) {
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

	manager := uow.LogisticsManager()
	warehouse, err := findWarehouse(manager, cmd.WarehouseID())
	if err != nil {
		return kernel.UUID{}, err
	}

	line, err := manager.CreateLine(cmd.Number(), cmd.MaxCapacity(), cmd.Mode())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = manager.AddLineToWarehouse(warehouse, line); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return line.ID(), nil
}
