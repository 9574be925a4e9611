package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

type GetDashboardQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetDashboardQueryHandler(uowFactory UoWFactory) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{uowFactory: uowFactory}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) (DashboardResponse, error) {
		return DashboardResponse{
			Statistics:   m.Statistics(),
			OffloadOrder: m.OffloadOrder().String(),
		}, nil
	})
}
