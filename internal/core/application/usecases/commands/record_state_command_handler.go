package commands

import (
	"context"
)

// RecordStateCommandHandler opens and commits an empty unit of work; the
// commit records the current summary.
type RecordStateCommandHandler struct {
	uowFactory UoWFactory
}

func NewRecordStateCommandHandler(uowFactory UoWFactory) RecordStateCommandHandler {
	return RecordStateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RecordStateCommandHandler) Handle(ctx context.Context, cmd RecordStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.Commit(ctx)
}
