package order

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item is a line item binding a quantity of one product to one order.
//
// Invariants:
//   - Quantity is positive and at most the product's stock at creation time
//     (the latter is enforced by the fulfillment path, not here: the stock
//     decrement that accompanies item creation fails first)
//   - PriceAtPurchase is the product's unit price captured at creation time,
//     decoupled from later price changes
//   - Never mutated after creation
type Item struct {
	id              kernel.UUID
	orderID         kernel.UUID
	productID       kernel.UUID
	quantity        int
	priceAtPurchase kernel.Money

	isConstructed bool
}

// NewItem creates a line item for the given order and product reference,
// snapshotting the supplied unit price.
func NewItem(id, orderID, productID kernel.UUID, quantity int, priceAtPurchase kernel.Money) (*Item, error) {
	item := &Item{
		priceAtPurchase: priceAtPurchase,
		isConstructed:   true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(id, orderID, productID kernel.UUID, quantity int, priceAtPurchase kernel.Money) (*Item, error) {
	return NewItem(id, orderID, productID, quantity, priceAtPurchase)
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the identifier of the referenced product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// PriceAtPurchase returns the unit price captured when the item was created.
func (i *Item) PriceAtPurchase() kernel.Money {
	return i.priceAtPurchase
}

// Subtotal returns quantity times the captured unit price.
func (i *Item) Subtotal() kernel.Money {
	return i.priceAtPurchase.MultiplyBy(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
