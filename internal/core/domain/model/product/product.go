package product

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is the catalog aggregate tracking availability of one sellable item.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price is never negative (enforced by kernel.Money)
//   - Stock is never negative at any observable moment
//   - Can only be created through NewProduct or RestoreProduct
//
// Stock is mutated exclusively through DecreaseStock, RestoreStock, and
// AdjustStock; there is no raw setter.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int

	isConstructed bool
}

// NewProduct creates a Product with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (required)
//   - description: free-form description (may be empty)
//   - price: unit price (non-negative by construction)
//   - stock: initial available units (must be >= 0)
//
// Returns a validation error if any parameter is invalid.
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, stock int) (*Product, error) {
	p := &Product{
		description:   description,
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// The same invariants as NewProduct apply; a row that fails them indicates
// corrupted data and is rejected.
func RestoreProduct(id kernel.UUID, name, description string, price kernel.Money, stock int) (*Product, error) {
	return NewProduct(id, name, description, price, stock)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the product's current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the number of available units.
func (p *Product) Stock() int {
	return p.stock
}

// ChangePrice updates the unit price. Existing order items keep the price
// captured when they were created; this only affects future orders.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

// DecreaseStock removes quantity units from stock.
//
// Returns:
//   - a validation error if quantity is not positive
//   - *InsufficientStockError if quantity exceeds the available stock,
//     leaving the stock untouched
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stock {
		return NewInsufficientStockError(p.name, p.stock, quantity)
	}
	return p.AdjustStock(-quantity)
}

// RestoreStock returns quantity units to stock. Used when an order holding
// these units is cancelled.
func (p *Product) RestoreStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return p.AdjustStock(quantity)
}

// AdjustStock applies a positive or negative delta to stock.
// Returns *InvalidStockError if the result would be negative; the stock is
// left untouched in that case.
func (p *Product) AdjustStock(delta int) error {
	if p.stock+delta < 0 {
		return NewInvalidStockError(p.name, p.stock, delta)
	}
	p.stock += delta
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return NewInvalidStockError(p.name, 0, stock)
	}
	p.stock = stock
	return nil
}
