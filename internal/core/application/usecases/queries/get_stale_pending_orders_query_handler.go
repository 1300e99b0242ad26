package queries

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler finds pending orders older than the
// query's age threshold.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale-order queries.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching order identifiers,
// oldest first.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	ids := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, int(order.Pending), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
