package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DashboardHandler reads the inventory totals.
type DashboardHandler interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.DashboardResponse, error)
}

// UtilizationReportJob logs inventory totals on a schedule.
type UtilizationReportJob struct {
	handler  DashboardHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewUtilizationReportJob(handler DashboardHandler, schedule string, logger *slog.Logger) *UtilizationReportJob {
	return &UtilizationReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "utilization_report_job"),
	}
}

func (j *UtilizationReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Utilization report job started", "schedule", j.schedule)
	return nil
}

func (j *UtilizationReportJob) run() {
	ctx := context.Background()
	dashboard, err := j.handler.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Utilization report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Utilization report",
		"warehouses", dashboard.Warehouses,
		"lines", dashboard.Lines,
		"packages", dashboard.Packages,
		"pallets", dashboard.Pallets,
		"total_capacity", dashboard.TotalCapacity.String(),
		"used_capacity", dashboard.UsedCapacity.String(),
		"utilization_percentage", dashboard.UtilizationPercentage,
		"offload_order", dashboard.OffloadOrder,
	)
}

func (j *UtilizationReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Utilization report job stopped")
}
