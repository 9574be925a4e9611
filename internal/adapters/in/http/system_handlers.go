package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return success(ctx, http.StatusOK, "Healthy", nil)
}

// SetOffloadOrder handles PUT /api/v1/settings/offload-order.
func (s *Server) SetOffloadOrder(ctx echo.Context) error {
	var body servers.OffloadOrderSetting
	if err := bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewSetOffloadOrderCommand(body.Order)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	ok, err := s.commands.SetOffloadOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}
	if !ok {
		return failure(ctx, http.StatusBadRequest, "Invalid offload order")
	}
	return success(ctx, http.StatusOK, "Offload order set to "+cmd.Order(), nil)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	dashboard, err := s.queries.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return s.handleError(ctx, err)
	}

	return success(ctx, http.StatusOK, "", servers.Dashboard{
		Warehouses:            dashboard.Warehouses,
		Lines:                 dashboard.Lines,
		Packages:              dashboard.Packages,
		Pallets:               dashboard.Pallets,
		TotalCapacity:         dashboard.TotalCapacity.InexactFloat64(),
		UsedCapacity:          dashboard.UsedCapacity.InexactFloat64(),
		UtilizationPercentage: dashboard.UtilizationPercentage,
		OffloadOrder:          dashboard.OffloadOrder,
	})
}

// GetLatestState handles GET /api/v1/state/latest.
func (s *Server) GetLatestState(ctx echo.Context) error {
	summary, err := s.queries.GetLatestState.Handle(ctx.Request().Context(), queries.NewGetLatestStateQuery())
	if err != nil {
		return s.handleError(ctx, err)
	}
	return success(ctx, http.StatusOK, "", toStateSummary(summary))
}
