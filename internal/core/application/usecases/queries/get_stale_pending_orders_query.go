package queries

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
		"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
	)
)

// GetStalePendingOrdersQuery retrieves identifiers of orders that have been
// sitting in Pending longer than a given age. Feeds the expiration job, which
// cancels them through the regular stock-restoring cancellation path.
type GetStalePendingOrdersQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders older than
// the given duration. The duration must be positive.
func NewGetStalePendingOrdersQuery(olderThan time.Duration) (GetStalePendingOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan is invalid", fmt.Errorf("%s is not greater than 0", olderThan))
	}

	return GetStalePendingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// OlderThan returns the minimum age for an order to count as stale.
func (q GetStalePendingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}
