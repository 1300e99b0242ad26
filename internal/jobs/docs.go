// Package jobs provides scheduled background tasks for the order fulfillment
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleOrderExpirationJob - Runs every minute to cancel orders stuck in
// pending longer than the configured TTL, restoring their stock through the
// regular transactional cancellation path.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleOrdersHandler, cancelHandler, ttl, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// A zero TTL disables the expiration job entirely; StartAll and StopAll are
// then no-ops.
//
// # Error Handling
//
// The expiration job treats orders that moved out of pending, or vanished,
// between the query and the cancel as expected races and skips them silently.
// Everything else is logged.
package jobs
