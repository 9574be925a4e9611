package commands

import (
	"context"
)

// SetOffloadOrderCommandHandler changes the offload policy. Unknown policies return false.
type SetOffloadOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetOffloadOrderCommandHandler(uowFactory UoWFactory) SetOffloadOrderCommandHandler {
	return SetOffloadOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *SetOffloadOrderCommandHandler) Handle(ctx context.Context, cmd SetOffloadOrderCommand) (bool, error) {
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

	if !uow.LogisticsManager().SetOffloadOrder(cmd.Order()) {
		return false, nil
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
