// Package queries contains read-only operations over the persistence model.
// Implements the query side of the CQRS split: handlers read with raw SQL and
// return plain response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"pedidos/internal/core/application/auth"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders visible to an actor.
//
// Visibility is decided here, from the explicit actor argument, not from any
// ambient request state: admins see every order, customers see their own,
// couriers see none (their workload lives in the external delivery system).
// The same query backs both the order list and the JSON report.
type GetOrdersQuery struct {
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query scoped to the given actor.
func NewGetOrdersQuery(actor auth.Actor) GetOrdersQuery {
	return GetOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the identity the result set is scoped to.
func (q GetOrdersQuery) Actor() auth.Actor {
	return q.actor
}

// GetOrdersQueryItemResponse is one line item in an order response.
type GetOrdersQueryItemResponse struct {
	ID              kernel.UUID
	ProductID       kernel.UUID
	Quantity        int
	PriceAtPurchase kernel.Money
}

// GetOrdersQueryResponse is one order with its items.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Status          string
	ShippingAddress string
	TotalAmount     kernel.Money
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []GetOrdersQueryItemResponse
}
