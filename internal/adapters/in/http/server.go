package http

import (
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"
)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	CreateWarehouse     commands.CreateWarehouseCommandHandler
	CreateLine          commands.CreateLineCommandHandler
	CreatePackage       commands.CreatePackageCommandHandler
	CreatePallet        commands.CreatePalletCommandHandler
	LoadPackageToLine   commands.LoadPackageToLineCommandHandler
	LoadPackageToPallet commands.LoadPackageToPalletCommandHandler
	LoadPalletToLine    commands.LoadPalletToLineCommandHandler
	OffloadPackage      commands.OffloadPackageCommandHandler
	OffloadPallet       commands.OffloadPalletCommandHandler
	DiscardPackage      commands.DiscardPackageCommandHandler
	SetOffloadOrder     commands.SetOffloadOrderCommandHandler
	ApproveMixedQuality commands.ApproveMixedQualityCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	GetWarehouses        queries.GetWarehousesQueryHandler
	GetWarehouseSnapshot queries.GetWarehouseSnapshotQueryHandler
	GetLineHistory       queries.GetLineHistoryQueryHandler
	GetOffloadQueue      queries.GetOffloadQueueQueryHandler
	GetPackages          queries.GetPackagesQueryHandler
	GetPallets           queries.GetPalletsQueryHandler
	SearchPackage        queries.SearchPackageQueryHandler
	SearchPallet         queries.SearchPalletQueryHandler
	GetDashboard         queries.GetDashboardQueryHandler
	GetLatestState       queries.GetLatestStateQueryHandler
}

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}
