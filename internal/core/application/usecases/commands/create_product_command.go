package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
)

// CreateProductCommand represents a request to register a new catalog product
// with an initial stock level.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// The name is required and the initial stock must not be negative.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, description string,
	price kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product's description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the product's unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}
	c.stock = stock
	return nil
}
