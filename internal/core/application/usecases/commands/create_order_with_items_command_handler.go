package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
)

// CreateOrderWithItemsCommandHandler is the create side of the fulfillment
// engine. It persists the order, then processes the item requests in request
// order: look up the product under a row lock, check stock sufficiency,
// decrement stock, and create a line item snapshotting the product's current
// unit price. Everything runs in one transaction; the first failing item
// aborts the whole call and no partial state survives.
//
// Example:
//
//	handler := NewCreateOrderWithItemsCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    var stockErr *product.InsufficientStockError
//	    if errors.As(err, &stockErr) {
//	        // reject the request, stock is untouched
//	    }
//	    return err
//	}
type CreateOrderWithItemsCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderWithItemsCommandHandler creates the handler for the
// create-order-with-items operation.
func NewCreateOrderWithItemsCommandHandler(uowFactory UoWFactory) CreateOrderWithItemsCommandHandler {
	return CreateOrderWithItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created order with its items.
//
// Failure modes, all rolling back the transaction in full:
//   - validation errors from the command itself
//   - *errs.ObjectNotFoundError when a referenced product does not exist
//   - *product.InsufficientStockError when a requested quantity exceeds the
//     product's current stock
func (h *CreateOrderWithItemsCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderWithItemsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.ShippingAddress(), cmd.TotalAmount())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	// Items are processed in request order; the row lock taken by
	// GetForUpdate is held until commit/rollback, so the sufficiency check
	// and the decrement below are a single serialized unit per product.
	for _, request := range cmd.Items() {
		p, productErr := productRepo.GetForUpdate(ctx, request.ProductID())
		if productErr != nil {
			return nil, productErr
		}

		if err = p.DecreaseStock(request.Quantity()); err != nil {
			return nil, err
		}

		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}

		if _, err = newOrder.AddItem(p, request.Quantity()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
