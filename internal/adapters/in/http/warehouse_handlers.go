package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	warehouses, err := s.queries.GetWarehouses.Handle(ctx.Request().Context(), queries.NewGetWarehousesQuery())
	if err != nil {
		return s.handleError(ctx, err)
	}

	response := make([]servers.Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		response = append(response, toWarehouse(w))
	}
	return success(ctx, http.StatusOK, "", response)
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var body servers.NewWarehouse
	if err := bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCreateWarehouseCommand(body.Name, decimal.NewFromFloat(body.MaxCapacity))
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	id, err := s.commands.CreateWarehouse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return success(ctx, http.StatusCreated, "Warehouse "+cmd.Name()+" created successfully",
		servers.Created{Id: toAPIID(id)})
}

// GetWarehouseSnapshot handles GET /api/v1/warehouses/{id}/snapshot.
func (s *Server) GetWarehouseSnapshot(ctx echo.Context, id openapi_types.UUID) error {
	warehouseID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetWarehouseSnapshotQuery(warehouseID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	snapshot, err := s.queries.GetWarehouseSnapshot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}
	return success(ctx, http.StatusOK, "", toSnapshot(snapshot))
}

// GetWarehouseOffloadQueue handles GET /api/v1/warehouses/{id}/offload-queue.
func (s *Server) GetWarehouseOffloadQueue(ctx echo.Context, id openapi_types.UUID) error {
	return s.offloadQueue(ctx, queries.WarehouseScope, id)
}

func (s *Server) offloadQueue(ctx echo.Context, scope queries.OffloadScope, id openapi_types.UUID) error {
	targetID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOffloadQueueQuery(scope, targetID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	pkgs, err := s.queries.GetOffloadQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.handleError(ctx, err)
	}
	return success(ctx, http.StatusOK, "", toPackages(pkgs))
}
