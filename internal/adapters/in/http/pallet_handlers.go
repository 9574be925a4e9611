package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListPallets handles GET /api/v1/pallets.
func (s *Server) ListPallets(ctx echo.Context) error {
	pallets, err := s.queries.GetPallets.Handle(ctx.Request().Context(), queries.NewGetPalletsQuery())
	if err != nil {
		return s.handleError(ctx, err)
	}

	response := make([]servers.Pallet, 0, len(pallets))
	for _, p := range pallets {
		response = append(response, toPallet(p))
	}
	return success(ctx, http.StatusOK, "", response)
}

// CreatePallet handles POST /api/v1/pallets.
func (s *Server) CreatePallet(ctx echo.Context) error {
	var body servers.NewPallet
	if err := bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCreatePalletCommand(body.QualityMark, body.MaxCapacity)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	id, err := s.commands.CreatePallet.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return success(ctx, http.StatusCreated, "Pallet created successfully", servers.Created{Id: toAPIID(id)})
}

// SearchPallet handles GET /api/v1/pallets/search.
func (s *Server) SearchPallet(ctx echo.Context, params servers.SearchPalletParams) error {
	match, err := s.queries.SearchPallet.Handle(ctx.Request().Context(), queries.NewSearchPalletQuery(params.Serial))
	if err != nil {
		return s.handleError(ctx, err)
	}
	if match == nil {
		return success(ctx, http.StatusOK, "Pallet not found", nil)
	}

	return success(ctx, http.StatusOK, "", servers.PalletSearchResult{
		Pallet:        toPallet(match.Pallet),
		WarehouseId:   toAPIID(match.WarehouseID),
		WarehouseName: match.WarehouseName,
		LineId:        toAPIID(match.LineID),
		LineNumber:    match.LineNumber,
	})
}

// LoadPalletToLine handles POST /api/v1/pallets/{id}/load-to-line.
func (s *Server) LoadPalletToLine(ctx echo.Context, id openapi_types.UUID) error {
	palletID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	var body servers.LineTarget
	if err = bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}
	lineID, err := kernel.UUIDFromGoogle(body.LineId)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewLoadPalletToLineCommand(palletID, lineID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	placed, err := s.commands.LoadPalletToLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}
	if !placed {
		return failure(ctx, http.StatusBadRequest,
			"Failed to load pallet to line. Check quality mark and capacity.")
	}
	return success(ctx, http.StatusOK, "Pallet loaded to line successfully", nil)
}

// OffloadPallet handles POST /api/v1/pallets/{id}/offload.
func (s *Server) OffloadPallet(ctx echo.Context, id openapi_types.UUID) error {
	palletID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewOffloadPalletCommand(palletID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	removed, err := s.commands.OffloadPallet.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}
	if !removed {
		return failure(ctx, http.StatusBadRequest, "Pallet is not on a line")
	}
	return success(ctx, http.StatusOK, "Pallet offloaded successfully", nil)
}
