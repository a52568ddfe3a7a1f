// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The single job, SessionCleanupJob, runs every minute and evicts working
// sessions that have been idle past the configured TTL, so abandoned uploads
// do not accumulate in memory.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(cleanupHandler, sessionTTL, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
