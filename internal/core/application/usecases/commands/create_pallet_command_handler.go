package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// CreatePalletCommandHandler creates an empty pallet stamped with the current time.
type CreatePalletCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreatePalletCommandHandler(uowFactory UoWFactory) CreatePalletCommandHandler {
	return CreatePalletCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreatePalletCommandHandler) Handle(ctx context.Context, cmd CreatePalletCommand) (kernel.UUID, error) {
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

	pallet, err := uow.LogisticsManager().CreatePallet(cmd.QualityMark(), cmd.MaxCapacity())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return pallet.ID(), nil
}
