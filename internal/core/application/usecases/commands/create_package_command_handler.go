package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// CreatePackageCommandHandler creates a free-standing package stamped with the current time.
type CreatePackageCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreatePackageCommandHandler(uowFactory UoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (kernel.UUID, error) {
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

	pkg, err := uow.LogisticsManager().CreatePackage(cmd.Kind(), cmd.QualityMark(), cmd.Mass())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return pkg.ID(), nil
}
