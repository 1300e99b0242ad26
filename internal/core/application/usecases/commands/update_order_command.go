package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrUpdateOrderCommandHasNoChanges = errors.New("update order command carries no changes")
	ErrCancelIsNotAnUpdate            = errors.New(
		"cancellation must be requested via CancelOrderCommand",
	)
)

// UpdateOrderCommand represents a request to change an order's shipping
// address, its lifecycle state, or both. Cancellation is explicitly not an
// update: it couples a state change with stock restoration and has its own
// command, so a Cancelled target is rejected here at construction time.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	shippingAddress string       // empty means unchanged
	status          order.Status // Unknown means unchanged

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command carrying the requested changes.
// Pass an empty address or order.Unknown for fields that should not change;
// at least one change is required.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	shippingAddress string,
	status order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		shippingAddress: shippingAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if shippingAddress == "" && status == order.Unknown {
		return UpdateOrderCommand{}, ErrUpdateOrderCommandHasNoChanges
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShippingAddress returns the new address, or empty when unchanged.
func (c UpdateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Status returns the target lifecycle state, or order.Unknown when unchanged.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if status == order.Unknown {
		return nil
	}
	if status == order.Cancelled {
		return ErrCancelIsNotAnUpdate
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
