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

// ListPackages handles GET /api/v1/packages.
func (s *Server) ListPackages(ctx echo.Context) error {
	pkgs, err := s.queries.GetPackages.Handle(ctx.Request().Context(), queries.NewGetPackagesQuery())
	if err != nil {
		return s.handleError(ctx, err)
	}
	return success(ctx, http.StatusOK, "", toPackages(pkgs))
}

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var body servers.NewPackage
	if err := bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCreatePackageCommand(body.PackageType, body.QualityMark, decimal.NewFromFloat(body.Mass))
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	id, err := s.commands.CreatePackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}

	return success(ctx, http.StatusCreated, "Package created successfully", servers.Created{Id: toAPIID(id)})
}

// SearchPackage handles GET /api/v1/packages/search. A miss answers 200 with
// no data.
func (s *Server) SearchPackage(ctx echo.Context, params servers.SearchPackageParams) error {
	match, err := s.queries.SearchPackage.Handle(ctx.Request().Context(), queries.NewSearchPackageQuery(params.Serial))
	if err != nil {
		return s.handleError(ctx, err)
	}
	if match == nil {
		return success(ctx, http.StatusOK, "Package not found", nil)
	}

	return success(ctx, http.StatusOK, "", servers.PackageSearchResult{
		Package:       toPackage(match.Package),
		WarehouseId:   toAPIID(match.WarehouseID),
		WarehouseName: match.WarehouseName,
		LineId:        toAPIID(match.LineID),
		LineNumber:    match.LineNumber,
		PalletId:      toAPIIDPtr(match.PalletID),
	})
}

// LoadPackageToLine handles POST /api/v1/packages/{id}/load-to-line.
func (s *Server) LoadPackageToLine(ctx echo.Context, id openapi_types.UUID) error {
	packageID, err := kernel.UUIDFromGoogle(id)
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

	cmd, err := commands.NewLoadPackageToLineCommand(packageID, lineID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	placed, err := s.commands.LoadPackageToLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}
	if !placed {
		return failure(ctx, http.StatusBadRequest,
			"Failed to load package to line. Check package type, quality mark and capacity.")
	}
	return success(ctx, http.StatusOK, "Package loaded to line successfully", nil)
}

// LoadPackageToPallet handles POST /api/v1/packages/{id}/load-to-pallet.
func (s *Server) LoadPackageToPallet(ctx echo.Context, id openapi_types.UUID) error {
	packageID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	var body servers.PalletTarget
	if err = bindBody(ctx, &body); err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}
	palletID, err := kernel.UUIDFromGoogle(body.PalletId)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewLoadPackageToPalletCommand(packageID, palletID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	placed, err := s.commands.LoadPackageToPallet.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}
	if !placed {
		return failure(ctx, http.StatusBadRequest,
			"Failed to load package to pallet. Check package type, quality mark and capacity.")
	}
	return success(ctx, http.StatusOK, "Package loaded to pallet successfully", nil)
}

// OffloadPackage handles POST /api/v1/packages/{id}/offload.
func (s *Server) OffloadPackage(ctx echo.Context, id openapi_types.UUID) error {
	packageID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewOffloadPackageCommand(packageID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	removed, err := s.commands.OffloadPackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.handleError(ctx, err)
	}
	if !removed {
		return failure(ctx, http.StatusBadRequest, "Package is not stored anywhere")
	}
	return success(ctx, http.StatusOK, "Package offloaded successfully", nil)
}

// DiscardPackage handles POST /api/v1/packages/{id}/discard.
func (s *Server) DiscardPackage(ctx echo.Context, id openapi_types.UUID) error {
	packageID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewDiscardPackageCommand(packageID)
	if err != nil {
		return failure(ctx, http.StatusBadRequest, err.Error())
	}

	if _, err = s.commands.DiscardPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.handleError(ctx, err)
	}
	return success(ctx, http.StatusOK, "Package discarded successfully", nil)
}
