package commands

import (
	"context"
)

// LoadPackageToPalletCommandHandler puts a loose package on a pallet.
type LoadPackageToPalletCommandHandler struct {
	uowFactory UoWFactory
}

func NewLoadPackageToPalletCommandHandler(uowFactory UoWFactory) LoadPackageToPalletCommandHandler {
	return LoadPackageToPalletCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *LoadPackageToPalletCommandHandler) Handle(ctx context.Context, cmd LoadPackageToPalletCommand) (bool, error) {
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
	pkg, err := findPackage(manager, cmd.PackageID())
	if err != nil {
		return false, err
	}
	pallet, err := findPallet(manager, cmd.PalletID())
	if err != nil {
		return false, err
	}

	if !manager.LoadPackageToPallet(pkg, pallet) {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
