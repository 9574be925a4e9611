package commands

import (
	"context"
)

// ApproveMixedQualityCommandHandler widens the quality slots of a line.
type ApproveMixedQualityCommandHandler struct {
	uowFactory UoWFactory
}

func NewApproveMixedQualityCommandHandler(uowFactory UoWFactory) ApproveMixedQualityCommandHandler {
	return ApproveMixedQualityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ApproveMixedQualityCommandHandler) Handle(ctx context.Context, cmd ApproveMixedQualityCommand) (bool, error) {
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
	line, err := findLine(manager, cmd.LineID())
	if err != nil {
		return false, err
	}

	if !manager.ApproveMixedQualityLine(line, cmd.MaxTypes()) {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
