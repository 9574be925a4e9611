package commands

import (
	"context"
)

// LoadPackageToLineCommandHandler places a carton on a line.
// A rejected placement is reported as false, not as an error.
type LoadPackageToLineCommandHandler struct {
	uowFactory UoWFactory
}

func NewLoadPackageToLineCommandHandler(uowFactory UoWFactory) LoadPackageToLineCommandHandler {
	return LoadPackageToLineCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *LoadPackageToLineCommandHandler) Handle(ctx context.Context, cmd LoadPackageToLineCommand) (bool, error) {
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
	line, err := findLine(manager, cmd.LineID())
	if err != nil {
		return false, err
	}

	if !manager.LoadPackageToLine(pkg, line) {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
