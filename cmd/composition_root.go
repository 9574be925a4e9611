package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	recorder   ports.StateRecorder
	uowFactory *memory.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot creates an empty inventory guarded by the in-memory store.
func NewCompositionRoot(recorder ports.StateRecorder, logger *slog.Logger) (CompositionRoot, error) {
	manager, err := services.NewLogisticsManager(inventory.NewRegistry(), nil, logger)
	if err != nil {
		return CompositionRoot{}, err
	}
	store := memory.NewStore(manager, recorder, logger)
	return CompositionRoot{
		recorder:   recorder,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) queryUoWFactory() queries.UoWFactory {
	return FuncQueryUoWFactory(func() queries.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRecordStateCommandHandler() commands.RecordStateCommandHandler {
	return commands.NewRecordStateCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.queryUoWFactory())
}

func (c *CompositionRoot) CommandHandlers() httpin.CommandHandlers {
	f := c.commandUoWFactory()
	return httpin.CommandHandlers{
		CreateWarehouse:     commands.NewCreateWarehouseCommandHandler(f),
		CreateLine:          commands.NewCreateLineCommandHandler(f),
		CreatePackage:       commands.NewCreatePackageCommandHandler(f),
		CreatePallet:        commands.NewCreatePalletCommandHandler(f),
		LoadPackageToLine:   commands.NewLoadPackageToLineCommandHandler(f),
		LoadPackageToPallet: commands.NewLoadPackageToPalletCommandHandler(f),
		LoadPalletToLine:    commands.NewLoadPalletToLineCommandHandler(f),
		OffloadPackage:      commands.NewOffloadPackageCommandHandler(f),
		OffloadPallet:       commands.NewOffloadPalletCommandHandler(f),
		DiscardPackage:      commands.NewDiscardPackageCommandHandler(f),
		SetOffloadOrder:     commands.NewSetOffloadOrderCommandHandler(f),
		ApproveMixedQuality: commands.NewApproveMixedQualityCommandHandler(f),
	}
}

func (c *CompositionRoot) QueryHandlers() httpin.QueryHandlers {
	f := c.queryUoWFactory()
	return httpin.QueryHandlers{
		GetWarehouses:        queries.NewGetWarehousesQueryHandler(f),
		GetWarehouseSnapshot: queries.NewGetWarehouseSnapshotQueryHandler(f),
		GetLineHistory:       queries.NewGetLineHistoryQueryHandler(f),
		GetOffloadQueue:      queries.NewGetOffloadQueueQueryHandler(f),
		GetPackages:          queries.NewGetPackagesQueryHandler(f),
		GetPallets:           queries.NewGetPalletsQueryHandler(f),
		SearchPackage:        queries.NewSearchPackageQueryHandler(f),
		SearchPallet:         queries.NewSearchPalletQueryHandler(f),
		GetDashboard:         c.CreateGetDashboardQueryHandler(),
		GetLatestState:       queries.NewGetLatestStateQueryHandler(c.recorder),
	}
}

// NewEcho builds the HTTP router over all use cases.
func (c *CompositionRoot) NewEcho() (*echo.Echo, error) {
	server := httpin.NewServer(c.CommandHandlers(), c.QueryHandlers(), c.logger)
	return httpin.NewEcho(server, c.logger)
}

func (c *CompositionRoot) NewJobManager(cfg Config) *jobs.JobManager {
	recordState := c.CreateRecordStateCommandHandler()
	return jobs.NewJobManager(
		jobs.Schedules{Snapshot: cfg.SnapshotSchedule, Report: cfg.ReportSchedule},
		&recordState,
		c.CreateGetDashboardQueryHandler(),
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncQueryUoWFactory func() queries.UoW

func (f FuncQueryUoWFactory) Create() queries.UoW {
	return f()
}
