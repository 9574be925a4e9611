package queries

import (
	"context"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/ports"
)

// GetLatestStateQueryHandler reads from the state recorder directly; the
// summary lives outside the in-memory inventory.
type GetLatestStateQueryHandler struct {
	recorder ports.StateRecorder
}

func NewGetLatestStateQueryHandler(recorder ports.StateRecorder) GetLatestStateQueryHandler {
	return GetLatestStateQueryHandler{recorder: recorder}
}

// Handle wraps errs.ErrObjectNotFound when nothing has been recorded yet.
func (h GetLatestStateQueryHandler) Handle(
	ctx context.Context,
	query GetLatestStateQuery,
) (inventory.StateSummary, error) {
	if err := query.Validate(); err != nil {
		return inventory.StateSummary{}, err
	}

	return h.recorder.Latest(ctx)
}
