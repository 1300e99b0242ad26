package commands

import (
	"context"
)

// CancelOrderCommandHandler is the cancel side of the fulfillment engine.
// It re-reads the order under a row lock inside the transaction, performs
// the one-shot pending-to-cancelled transition on the aggregate, and
// restores every item's quantity to its product's stock, also under row
// locks. The transition and the restoration commit together: a second
// cancellation of the same order, concurrent or later, fails the
// state-machine check before any stock is touched, so stock can never be
// double-restored.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates the handler for the
// cancel-order-restore-stock operation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
//
// Failure modes, all rolling back the transaction in full:
//   - *errs.ObjectNotFoundError when the order, or a product referenced by
//     one of its items, does not exist
//   - a status-transition error when the order is not in a cancellable state
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	// Lock the order row before deciding the transition. Two concurrent
	// cancellations serialize here: the loser re-reads the committed
	// Cancelled status and fails the state-machine check before any stock
	// is touched.
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	for _, item := range o.Items() {
		p, productErr := productRepo.GetForUpdate(ctx, item.ProductID())
		if productErr != nil {
			return productErr
		}

		if err = p.RestoreStock(item.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
