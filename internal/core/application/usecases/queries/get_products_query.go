package queries

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves the product catalog with current stock levels.
// This is a parameterless query; the catalog is visible to every role.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query for the full catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse is one catalog product with its availability.
type GetProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
}
