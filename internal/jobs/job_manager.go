package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the jobs. An empty expression
// disables the job.
type Schedules struct {
	Snapshot string
	Report   string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []job
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager creates a job manager for every job that has a schedule.
func NewJobManager(
	schedules Schedules,
	recordStateHandler StateRecordHandler,
	dashboardHandler DashboardHandler,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if schedules.Snapshot != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "state snapshot job",
			job:  NewStateSnapshotJob(recordStateHandler, schedules.Snapshot, logger),
		})
	}
	if schedules.Report != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "utilization report job",
			job:  NewUtilizationReportJob(dashboardHandler, schedules.Report, logger),
		})
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start %s: %w", nj.name, err)
		}
		jm.started = append(jm.started, nj.job)
	}
	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
