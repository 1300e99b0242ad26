package kernel

import (
	"fmt"
	"math"

	"pedidos/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// Amounts are stored as integer cents so arithmetic stays exact; the HTTP
// layer converts to and from decimal representations at the boundary.
//
// The zero value of Money is a valid zero amount. Negative amounts cannot be
// constructed.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromFloat(19.99)
//	if err != nil {
//	    // handle error
//	}
//	total := price.MultiplyBy(3)
//	fmt.Println(total.Float64()) // 59.97
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error if cents is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount is invalid", fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money value from a decimal amount, rounding to
// the nearest cent. Returns an error for negative or non-finite amounts.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount is invalid", fmt.Errorf("%f is not a finite number", amount))
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal number of currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// MultiplyBy returns a new Money scaled by a non-negative integer factor.
// Multiplying a valid amount by a valid quantity cannot go negative, so no
// error is returned; callers validate quantity separately.
func (m Money) MultiplyBy(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "19.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
