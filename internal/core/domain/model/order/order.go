package order

import (
	"errors"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsOnlyWhilePending is returned when adding an item to an order
	// that already left the Pending state.
	ErrItemsOnlyWhilePending = errors.New("items can only be added while the order is pending")

	// ErrCancelViaCancelOperation is returned when a generic status change
	// targets Cancelled. Cancellation restores stock and must go through the
	// dedicated cancellation operation.
	ErrCancelViaCancelOperation = errors.New("cancellation must go through the cancel operation")
)

// Order is the aggregate root for a customer's purchase request. It bundles
// line items with a lifecycle state and exclusively owns those items.
//
// Invariants:
//   - Valid unique identifier and customer reference
//   - Non-empty shipping address
//   - Non-negative total amount (enforced by kernel.Money)
//   - Status transitions follow the Status state machine; the
//     Pending -> Cancelled edge fires at most once
//   - Items are only added while Pending and never mutated afterwards
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	status          Status
	shippingAddress string
	totalAmount     kernel.Money
	items           []*Item
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates an Order in Pending status with no items.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customerID: owning customer reference (must be a valid UUID)
//   - shippingAddress: destination address (required)
//   - totalAmount: order total as declared by the caller
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id, customerID kernel.UUID, shippingAddress string, totalAmount kernel.Money) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		totalAmount:   totalAmount,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its items
// and timestamps. The status must belong to the closed domain set.
func RestoreOrder(
	id, customerID kernel.UUID,
	status Status,
	shippingAddress string,
	totalAmount kernel.Money,
	items []*Item,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, shippingAddress, totalAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if !item.OrderID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause("item is invalid",
				fmt.Errorf("item %s belongs to order %s", item.ID(), item.OrderID()))
		}
	}

	o.status = status
	o.items = items
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the destination address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// TotalAmount returns the declared order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Items returns the order's line items. Freshly added items keep insertion
// order; a restored order carries its items in whatever order the repository
// loaded them.
func (o *Order) Items() []*Item {
	return o.items
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem creates a line item for the given product, snapshotting the
// product's current unit price, and appends it to the order.
//
// The caller is responsible for decrementing the product's stock in the same
// transaction; AddItem itself does not touch stock.
//
// Returns the created item, or an error if the order is not Pending or the
// quantity is invalid.
func (o *Order) AddItem(p *product.Product, quantity int) (*Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if o.status != Pending {
		return nil, ErrItemsOnlyWhilePending
	}

	item, err := NewItem(kernel.NewUUID(), o.id, p.ID(), quantity, p.Price())
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.touch()
	return item, nil
}

// Cancel transitions the order to Cancelled.
//
// The transition is only permitted from Pending and therefore succeeds at
// most once per order; callers couple it with stock restoration in the same
// transaction, so restoration also fires at most once.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ChangeStatus performs a non-cancelling lifecycle transition.
// Targeting Cancelled is rejected with ErrCancelViaCancelOperation so the
// stock-restoring path cannot be bypassed.
func (o *Order) ChangeStatus(target Status) error {
	if target == Cancelled {
		return ErrCancelViaCancelOperation
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ChangeShippingAddress updates the destination address.
func (o *Order) ChangeShippingAddress(address string) error {
	if err := o.setShippingAddress(address); err != nil {
		return err
	}
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = address
	return nil
}
