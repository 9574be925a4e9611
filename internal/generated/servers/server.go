package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/health)
	GetHealth(ctx echo.Context) error
	// (GET /api/v1/warehouses)
	ListWarehouses(ctx echo.Context) error
	// (POST /api/v1/warehouses)
	CreateWarehouse(ctx echo.Context) error
	// (GET /api/v1/warehouses/{id}/snapshot)
	GetWarehouseSnapshot(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/warehouses/{id}/offload-queue)
	GetWarehouseOffloadQueue(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/warehouses/{id}/lines)
	CreateLine(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/lines/{id}/history)
	GetLineHistory(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/lines/{id}/offload-queue)
	GetLineOffloadQueue(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/lines/{id}/approve-mixed)
	ApproveMixedQuality(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/packages)
	ListPackages(ctx echo.Context) error
	// (POST /api/v1/packages)
	CreatePackage(ctx echo.Context) error
	// (GET /api/v1/packages/search)
	SearchPackage(ctx echo.Context, params SearchPackageParams) error
	// (POST /api/v1/packages/{id}/load-to-line)
	LoadPackageToLine(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/packages/{id}/load-to-pallet)
	LoadPackageToPallet(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/packages/{id}/offload)
	OffloadPackage(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/packages/{id}/discard)
	DiscardPackage(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/pallets)
	ListPallets(ctx echo.Context) error
	// (POST /api/v1/pallets)
	CreatePallet(ctx echo.Context) error
	// (GET /api/v1/pallets/search)
	SearchPallet(ctx echo.Context, params SearchPalletParams) error
	// (POST /api/v1/pallets/{id}/load-to-line)
	LoadPalletToLine(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/pallets/{id}/offload)
	OffloadPallet(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /api/v1/settings/offload-order)
	SetOffloadOrder(ctx echo.Context) error
	// (GET /api/v1/dashboard)
	GetDashboard(ctx echo.Context) error
	// (GET /api/v1/state/latest)
	GetLatestState(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// ListWarehouses converts echo context to params.
func (w *ServerInterfaceWrapper) ListWarehouses(ctx echo.Context) error {
	return w.Handler.ListWarehouses(ctx)
}

// CreateWarehouse converts echo context to params.
func (w *ServerInterfaceWrapper) CreateWarehouse(ctx echo.Context) error {
	return w.Handler.CreateWarehouse(ctx)
}

// GetWarehouseSnapshot converts echo context to params.
func (w *ServerInterfaceWrapper) GetWarehouseSnapshot(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetWarehouseSnapshot(ctx, id)
}

// GetWarehouseOffloadQueue converts echo context to params.
func (w *ServerInterfaceWrapper) GetWarehouseOffloadQueue(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetWarehouseOffloadQueue(ctx, id)
}

// CreateLine converts echo context to params.
func (w *ServerInterfaceWrapper) CreateLine(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.CreateLine(ctx, id)
}

// GetLineHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetLineHistory(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetLineHistory(ctx, id)
}

// GetLineOffloadQueue converts echo context to params.
func (w *ServerInterfaceWrapper) GetLineOffloadQueue(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetLineOffloadQueue(ctx, id)
}

// ApproveMixedQuality converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveMixedQuality(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.ApproveMixedQuality(ctx, id)
}

// ListPackages converts echo context to params.
func (w *ServerInterfaceWrapper) ListPackages(ctx echo.Context) error {
	return w.Handler.ListPackages(ctx)
}

// CreatePackage converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePackage(ctx echo.Context) error {
	return w.Handler.CreatePackage(ctx)
}

// SearchPackage converts echo context to params.
func (w *ServerInterfaceWrapper) SearchPackage(ctx echo.Context) error {
	var params SearchPackageParams

	err := runtime.BindQueryParameter("form", true, true, "serial", ctx.QueryParams(), &params.Serial)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serial: %s", err))
	}

	return w.Handler.SearchPackage(ctx, params)
}

// LoadPackageToLine converts echo context to params.
func (w *ServerInterfaceWrapper) LoadPackageToLine(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.LoadPackageToLine(ctx, id)
}

// LoadPackageToPallet converts echo context to params.
func (w *ServerInterfaceWrapper) LoadPackageToPallet(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.LoadPackageToPallet(ctx, id)
}

// OffloadPackage converts echo context to params.
func (w *ServerInterfaceWrapper) OffloadPackage(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.OffloadPackage(ctx, id)
}

// DiscardPackage converts echo context to params.
func (w *ServerInterfaceWrapper) DiscardPackage(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DiscardPackage(ctx, id)
}

// ListPallets converts echo context to params.
func (w *ServerInterfaceWrapper) ListPallets(ctx echo.Context) error {
	return w.Handler.ListPallets(ctx)
}

// CreatePallet converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePallet(ctx echo.Context) error {
	return w.Handler.CreatePallet(ctx)
}

// SearchPallet converts echo context to params.
func (w *ServerInterfaceWrapper) SearchPallet(ctx echo.Context) error {
	var params SearchPalletParams

	err := runtime.BindQueryParameter("form", true, true, "serial", ctx.QueryParams(), &params.Serial)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serial: %s", err))
	}

	return w.Handler.SearchPallet(ctx, params)
}

// LoadPalletToLine converts echo context to params.
func (w *ServerInterfaceWrapper) LoadPalletToLine(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.LoadPalletToLine(ctx, id)
}

// OffloadPallet converts echo context to params.
func (w *ServerInterfaceWrapper) OffloadPallet(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.OffloadPallet(ctx, id)
}

// SetOffloadOrder converts echo context to params.
func (w *ServerInterfaceWrapper) SetOffloadOrder(ctx echo.Context) error {
	return w.Handler.SetOffloadOrder(ctx)
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	return w.Handler.GetDashboard(ctx)
}

// GetLatestState converts echo context to params.
func (w *ServerInterfaceWrapper) GetLatestState(ctx echo.Context) error {
	return w.Handler.GetLatestState(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter under /api/v1.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "/api/v1")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/warehouses", wrapper.ListWarehouses)
	router.POST(baseURL+"/warehouses", wrapper.CreateWarehouse)
	router.GET(baseURL+"/warehouses/:id/snapshot", wrapper.GetWarehouseSnapshot)
	router.GET(baseURL+"/warehouses/:id/offload-queue", wrapper.GetWarehouseOffloadQueue)
	router.POST(baseURL+"/warehouses/:id/lines", wrapper.CreateLine)
	router.GET(baseURL+"/lines/:id/history", wrapper.GetLineHistory)
	router.GET(baseURL+"/lines/:id/offload-queue", wrapper.GetLineOffloadQueue)
	router.POST(baseURL+"/lines/:id/approve-mixed", wrapper.ApproveMixedQuality)
	router.GET(baseURL+"/packages", wrapper.ListPackages)
	router.POST(baseURL+"/packages", wrapper.CreatePackage)
	router.GET(baseURL+"/packages/search", wrapper.SearchPackage)
	router.POST(baseURL+"/packages/:id/load-to-line", wrapper.LoadPackageToLine)
	router.POST(baseURL+"/packages/:id/load-to-pallet", wrapper.LoadPackageToPallet)
	router.POST(baseURL+"/packages/:id/offload", wrapper.OffloadPackage)
	router.POST(baseURL+"/packages/:id/discard", wrapper.DiscardPackage)
	router.GET(baseURL+"/pallets", wrapper.ListPallets)
	router.POST(baseURL+"/pallets", wrapper.CreatePallet)
	router.GET(baseURL+"/pallets/search", wrapper.SearchPallet)
	router.POST(baseURL+"/pallets/:id/load-to-line", wrapper.LoadPalletToLine)
	router.POST(baseURL+"/pallets/:id/offload", wrapper.OffloadPallet)
	router.PUT(baseURL+"/settings/offload-order", wrapper.SetOffloadOrder)
	router.GET(baseURL+"/dashboard", wrapper.GetDashboard)
	router.GET(baseURL+"/state/latest", wrapper.GetLatestState)
}
