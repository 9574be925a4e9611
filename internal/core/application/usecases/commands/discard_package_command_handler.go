package commands

import (
	"context"
)

// DiscardPackageCommandHandler detaches and discards a package. Discarding an
// already discarded package succeeds again.
type DiscardPackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewDiscardPackageCommandHandler(uowFactory UoWFactory) DiscardPackageCommandHandler {
	return DiscardPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DiscardPackageCommandHandler) Handle(ctx context.Context, cmd DiscardPackageCommand) (bool, error) {
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

	discarded := manager.DiscardPackage(pkg)

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return discarded, nil
}
