package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items; the items have no
// independent lifecycle.
type OrderRepository interface {
	// Add persists a new order aggregate including its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items are immutable after creation, so only the order row is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order with its items while taking a
	// row-level lock on the order row, scoped to the surrounding
	// transaction. Every status-changing sequence must go through this
	// method so that two concurrent transactions cannot both read the same
	// pre-transition status and both act on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
