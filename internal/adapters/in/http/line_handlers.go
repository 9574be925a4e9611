package http

import (
	"fmt"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// CreateLine handles POST /api/v1/warehouses/{id}/lines.
func (s *Server) CreateLine(ctx echo.Context, id openapi_types.UUID) error {
	warehouseID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	var body servers.NewLine
	if err = bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCreateLineCommand(
		warehouseID,
		body.LineNumber,
		decimal.NewFromFloat(body.MaxCapacity),
		body.CapacityType,
	)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	lineID, err := s.commands.CreateLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return success(ctx, http.StatusCreated, fmt.Sprintf("Line %d created successfully", body.LineNumber),
		servers.Created{Id: toAPIID(lineID)})
}

// GetLineHistory handles GET /api/v1/lines/{id}/history.
func (s *Server) GetLineHistory(ctx echo.Context, id openapi_types.UUID) error {
	lineID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetLineHistoryQuery(lineID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	history, err := s.queries.GetLineHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}
	return success(ctx, http.StatusOK, "", toHistory(history))
}

// GetLineOffloadQueue handles GET /api/v1/lines/{id}/offload-queue.
func (s *Server) GetLineOffloadQueue(ctx echo.Context, id openapi_types.UUID) error {
	return s.offloadQueue(ctx, queries.LineScope, id)
}

// ApproveMixedQuality handles POST /api/v1/lines/{id}/approve-mixed. Without
// max_types the default number of quality marks is allowed.
func (s *Server) ApproveMixedQuality(ctx echo.Context, id openapi_types.UUID) error {
	lineID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	var body servers.MixedQualityApproval
	if err = bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}
	maxTypes := 0
	if body.MaxTypes != nil {
		maxTypes = *body.MaxTypes
	}

	cmd, err := commands.NewApproveMixedQualityCommand(lineID, maxTypes)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	approved, err := s.commands.ApproveMixedQuality.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}
	if !approved {
		return failure(ctx, http.StatusBadRequest, "Failed to approve mixed quality for the line")
	}
	return success(ctx, http.StatusOK,
		fmt.Sprintf("Line approved for up to %d quality types", cmd.MaxTypes()), nil)
}
