package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StateRecordHandler records the current state summary.
type StateRecordHandler interface {
	Handle(ctx context.Context, cmd commands.RecordStateCommand) error
}

// StateSnapshotJob periodically records a state summary.
type StateSnapshotJob struct {
	handler  StateRecordHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStateSnapshotJob(handler StateRecordHandler, schedule string, logger *slog.Logger) *StateSnapshotJob {
	return &StateSnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "state_snapshot_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *StateSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "State snapshot job started", "schedule", j.schedule)
	return nil
}

func (j *StateSnapshotJob) run() {
	ctx := context.Background()
	if err := j.handler.Handle(ctx, commands.NewRecordStateCommand()); err != nil {
		j.logger.ErrorContext(ctx, "State snapshot job failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *StateSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "State snapshot job stopped")
}
