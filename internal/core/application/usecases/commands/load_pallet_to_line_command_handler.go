package commands

import (
	"context"
)

// LoadPalletToLineCommandHandler places a pallet on a line.
type LoadPalletToLineCommandHandler struct {
	uowFactory UoWFactory
}

func NewLoadPalletToLineCommandHandler(uowFactory UoWFactory) LoadPalletToLineCommandHandler {
	return LoadPalletToLineCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *LoadPalletToLineCommandHandler) Handle(ctx context.Context, cmd LoadPalletToLineCommand) (bool, error) {
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
	line, err := findLine(manager, cmd.LineID())
	if err != nil {
		return false, err
	}

	if !manager.LoadPalletToLine(pallet, line) {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
