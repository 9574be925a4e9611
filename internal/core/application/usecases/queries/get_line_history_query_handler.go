package queries

import (
	"context"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/services"
)

type GetLineHistoryQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetLineHistoryQueryHandler(uowFactory UoWFactory) GetLineHistoryQueryHandler {
	return GetLineHistoryQueryHandler{uowFactory: uowFactory}
}

// Handle returns the history entries of a line, oldest first.
func (h GetLineHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetLineHistoryQuery,
) ([]inventory.HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) ([]inventory.HistoryEntry, error) {
		line, err := findLine(m, query.LineID())
		if err != nil {
			return nil, err
		}
		return m.LineHistory(line), nil
	})
}
