package commands

import (
	"context"
)

// OffloadPalletCommandHandler removes a pallet from its line.
type OffloadPalletCommandHandler struct {
	uowFactory UoWFactory
}

func NewOffloadPalletCommandHandler(uowFactory UoWFactory) OffloadPalletCommandHandler {
	return OffloadPalletCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *OffloadPalletCommandHandler) Handle(ctx context.Context, cmd OffloadPalletCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manager := uow.LogisticsManager()
	pallet, err := findPallet(manager, cmd.PalletID())
	if err != nil {
		return false, err
	}

	if !manager.OffloadPallet(pallet) {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
