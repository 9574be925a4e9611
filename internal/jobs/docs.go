// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds.
//
// # Available Jobs
//
// 1. StateSnapshotJob - records a state summary through the unit of work, so
// the recorder keeps a trail even while no commands arrive
// 2. UtilizationReportJob - logs warehouse totals and used capacity
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Schedules{
//		Snapshot: "0 */5 * * * *",
//		Report:   "0 0 * * * *",
//	}, recordStateHandler, dashboardHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs log failures and never stop the scheduler. A job with an empty
// schedule is not started. Failed job starts stop any already running jobs.
package jobs
