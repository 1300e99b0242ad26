// Package product contains the Product aggregate, the owner of the stock
// invariant: available stock is an integer that never goes negative, at any
// observable moment, for any reader.
//
// Stock is shared mutable state across concurrent requests. The aggregate only
// enforces the arithmetic side of the invariant; callers must hold a row-level
// lock on the product for the duration of any read-then-write stock sequence
// so that concurrent checks cannot both pass and then both decrement.
package product
