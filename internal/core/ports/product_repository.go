package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Stock mutations always go through Update after a GetForUpdate in the same
// transaction; the repository itself performs no stock arithmetic.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier without locking.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product by its unique identifier while taking
	// a row-level lock scoped to the surrounding transaction. Every
	// read-then-write stock sequence must go through this method so that two
	// concurrent transactions cannot both pass a sufficiency check and then
	// both decrement.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
