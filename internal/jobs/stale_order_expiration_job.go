package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StaleOrderExpirationJob cancels orders that have been sitting in pending
// longer than the configured TTL. Runs every minute; each stale order goes
// through the regular cancellation path, so its stock is restored in the
// same transaction as the state change.
type StaleOrderExpirationJob struct {
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler
	cancelHandler      commands.CancelOrderCommandHandler
	ttl                time.Duration
	cron               *cron.Cron
	logger             *slog.Logger
}

// NewStaleOrderExpirationJob creates a job that expires pending orders older
// than ttl.
func NewStaleOrderExpirationJob(
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderExpirationJob {
	return &StaleOrderExpirationJob{
		staleOrdersHandler: staleOrdersHandler,
		cancelHandler:      cancelHandler,
		ttl:                ttl,
		cron:               cron.New(),
		logger:             logger.With("component", "stale_order_expiration_job"),
	}
}

// Start begins the expiration job to run every minute.
func (j *StaleOrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.expireStaleOrders(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale order expiration job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the expiration job.
func (j *StaleOrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order expiration job stopped")
}

func (j *StaleOrderExpirationJob) expireStaleOrders(ctx context.Context) {
	query, err := queries.NewGetStalePendingOrdersQuery(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order query is invalid", "error", err)
		return
	}

	orderIDs, err := j.staleOrdersHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to find stale pending orders", "error", err)
		return
	}

	for _, orderID := range orderIDs {
		cmd, cmdErr := commands.NewCancelOrderCommand(orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build cancel command",
				"order_id", orderID.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.cancelHandler.Handle(ctx, cmd); handleErr != nil {
			// The order may have moved on or disappeared between the query
			// and the cancel; both are expected races, not system failures.
			if errors.Is(handleErr, errs.ErrValueIsInvalid) || errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to expire stale order",
				"order_id", orderID.String(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Expired stale pending order", "order_id", orderID.String())
	}
}
