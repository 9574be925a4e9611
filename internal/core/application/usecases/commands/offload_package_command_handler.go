package commands

import (
	"context"
)

// OffloadPackageCommandHandler removes a package from its container.
// Returns false when the package is not stored anywhere.
type OffloadPackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewOffloadPackageCommandHandler(uowFactory UoWFactory) OffloadPackageCommandHandler {
	return OffloadPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *OffloadPackageCommandHandler) Handle(ctx context.Context, cmd OffloadPackageCommand) (bool, error) {
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

	if !manager.OffloadPackage(pkg) {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
