package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateOrderWithItemsCommandIsNotConstructed = errors.New(
		"CreateOrderWithItemsCommand must be created via NewCreateOrderWithItemsCommand constructor",
	)
	ErrItemRequestIsNotConstructed = errors.New(
		"ItemRequest must be created via NewItemRequest constructor",
	)
	ErrShippingAddressIsRequired = errors.New("shipping address is required")
)

// ItemRequest is one requested line of a create-order-with-items call:
// a product reference and a positive quantity.
type ItemRequest struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemRequest creates a validated item request.
// Quantity must be greater than zero.
func NewItemRequest(productID kernel.UUID, quantity int) (ItemRequest, error) {
	request := ItemRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setProductID(productID),
		request.setQuantity(quantity),
	); err != nil {
		return ItemRequest{}, err
	}

	return request, nil
}

// Validate ensures the request was created through the constructor.
func (r ItemRequest) Validate() error {
	return r.guard.Validate(ErrItemRequestIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (r ItemRequest) ProductID() kernel.UUID {
	return r.productID
}

// Quantity returns the requested quantity.
func (r ItemRequest) Quantity() int {
	return r.quantity
}

func (r *ItemRequest) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	r.productID = productID
	return nil
}

func (r *ItemRequest) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

// CreateOrderWithItemsCommand represents a request to atomically create an
// order together with its line items, decrementing product stock for each.
//
// Example:
//
//	item, _ := NewItemRequest(productID, 2)
//	cmd, err := NewCreateOrderWithItemsCommand(
//	    kernel.NewUUID(), customerID, "Av. Carabobo 123", total, []ItemRequest{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderWithItemsCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderWithItemsCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	shippingAddress string
	totalAmount     kernel.Money
	items           []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderWithItemsCommand creates a command to register a new order
// with its items. Validates identifiers, the shipping address, and every item
// request. An empty item list is allowed.
func NewCreateOrderWithItemsCommand(
	orderID, customerID kernel.UUID,
	shippingAddress string,
	totalAmount kernel.Money,
	items []ItemRequest,
) (CreateOrderWithItemsCommand, error) {
	cmd := CreateOrderWithItemsCommand{
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setShippingAddress(shippingAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderWithItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderWithItemsCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderWithItemsCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderWithItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer reference.
func (c CreateOrderWithItemsCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingAddress returns the destination address.
func (c CreateOrderWithItemsCommand) ShippingAddress() string {
	return c.shippingAddress
}

// TotalAmount returns the declared order total.
func (c CreateOrderWithItemsCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// Items returns the requested line items in request order.
func (c CreateOrderWithItemsCommand) Items() []ItemRequest {
	return c.items
}

func (c *CreateOrderWithItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderWithItemsCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderWithItemsCommand) setShippingAddress(address string) error {
	if address == "" {
		return ErrShippingAddressIsRequired
	}
	c.shippingAddress = address
	return nil
}

func (c *CreateOrderWithItemsCommand) setItems(items []ItemRequest) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
