package product

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrInsufficientStock indicates a requested quantity exceeds the
	// currently available stock. Always a caller-recoverable rejection.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidStock indicates a stock adjustment would drive stock
	// negative. Reaching it after a sufficiency check already passed means a
	// logic or concurrency-control defect.
	ErrInvalidStock = errors.New("stock cannot be negative")
)

// InsufficientStockError reports that a requested quantity exceeds the
// product's available stock. It carries the product name and both quantities
// for diagnostics.
//
// The user-facing message contains the literal "Stock insuficiente" substring.
// Callers of the HTTP API pattern-match on it, so the literal is part of the
// error contract, not a formatting accident.
type InsufficientStockError struct {
	ProductName string
	Stock       int
	Requested   int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// product and quantities.
func NewInsufficientStockError(productName string, stock, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductName: productName,
		Stock:       stock,
		Requested:   requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto %s. Stock actual: %d, Solicitado: %d",
		e.ProductName, e.Stock, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InvalidStockError reports a stock adjustment whose result would be negative.
type InvalidStockError struct {
	ProductName string
	Stock       int
	Delta       int
}

// NewInvalidStockError creates an InvalidStockError for the given product,
// current stock and attempted delta.
func NewInvalidStockError(productName string, stock, delta int) *InvalidStockError {
	return &InvalidStockError{
		ProductName: productName,
		Stock:       stock,
		Delta:       delta,
	}
}

func (e *InvalidStockError) Error() string {
	return fmt.Sprintf("stock cannot be negative: product %s has stock %d, adjustment %d",
		e.ProductName, e.Stock, e.Delta)
}

func (e *InvalidStockError) Unwrap() error {
	return ErrInvalidStock
}
