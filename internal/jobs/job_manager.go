package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderExpirationJob *StaleOrderExpirationJob
}

// NewJobManager creates a new job manager with all required jobs.
// A zero staleOrderTTL disables the expiration job.
func NewJobManager(
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	staleOrderTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}

	if staleOrderTTL > 0 {
		jm.staleOrderExpirationJob = NewStaleOrderExpirationJob(
			staleOrdersHandler, cancelHandler, staleOrderTTL, logger)
	}

	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.staleOrderExpirationJob != nil {
		if err := jm.staleOrderExpirationJob.Start(); err != nil {
			return fmt.Errorf("failed to start stale order expiration job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.staleOrderExpirationJob != nil {
		jm.staleOrderExpirationJob.Stop()
	}
}
