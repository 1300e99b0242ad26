// Package order contains the Order aggregate: a customer's purchase request
// bundling zero or more line items with a lifecycle state.
//
// The aggregate owns its items exclusively (they are deleted with the order)
// and each item snapshots the product's unit price at purchase time. Lifecycle
// transitions are enforced by the Status state machine; in particular the
// pending-to-cancelled edge, which triggers stock restoration, can fire at
// most once per order.
package order
