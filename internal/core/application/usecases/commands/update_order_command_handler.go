package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies non-cancelling order updates: shipping
// address changes and lifecycle transitions with no stock effect.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	// Lock the order row so the transition is decided on the committed
	// status. Without the lock an update racing a cancellation could
	// overwrite Cancelled after its stock was already restored.
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.ShippingAddress() != "" {
		if err = o.ChangeShippingAddress(cmd.ShippingAddress()); err != nil {
			return nil, err
		}
	}

	if cmd.Status() != order.Unknown {
		if err = o.ChangeStatus(cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
