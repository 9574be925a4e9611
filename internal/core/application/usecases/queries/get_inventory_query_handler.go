package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

type GetPackagesQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetPackagesQueryHandler(uowFactory UoWFactory) GetPackagesQueryHandler {
	return GetPackagesQueryHandler{uowFactory: uowFactory}
}

func (h GetPackagesQueryHandler) Handle(ctx context.Context, query GetPackagesQuery) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) ([]PackageResponse, error) {
		return newPackageResponses(m.Packages()), nil
	})
}

type GetPalletsQueryHandler struct {
	uowFactory UoWFactory
}

func NewGetPalletsQueryHandler(uowFactory UoWFactory) GetPalletsQueryHandler {
	return GetPalletsQueryHandler{uowFactory: uowFactory}
}

func (h GetPalletsQueryHandler) Handle(ctx context.Context, query GetPalletsQuery) ([]PalletResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(m *services.LogisticsManager) ([]PalletResponse, error) {
		pallets := m.Pallets()
		out := make([]PalletResponse, 0, len(pallets))
		for _, p := range pallets {
			out = append(out, newPalletResponse(p))
		}
		return out, nil
	})
}
