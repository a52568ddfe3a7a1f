package jobs

import (
	"context"
	"log/slog"
	"time"

	"routeboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob evicts idle working sessions. Runs every minute so a
// session abandoned mid-edit disappears within a minute of its TTL expiring.
type SessionCleanupJob struct {
	handler commands.CleanupSessionsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionCleanupJob creates a job that evicts sessions idle past ttl.
func NewSessionCleanupJob(handler commands.CleanupSessionsCommandHandler, ttl time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCleanupSessionsCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job misconfigured", "error", err)
			return
		}

		evicted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
			return
		}
		if evicted > 0 {
			j.logger.InfoContext(ctx, "Evicted idle sessions", "count", evicted, "ttl", j.ttl)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
