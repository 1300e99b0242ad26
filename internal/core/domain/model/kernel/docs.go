// Package kernel provides core domain primitives shared across the order
// management domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison capabilities
//   - Money: a value object for non-negative monetary amounts stored as integer cents
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
