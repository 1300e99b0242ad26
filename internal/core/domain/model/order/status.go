package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──┬──> Delivered
//	          │        ^       │
//	          │        │       └──> Problem ──> InTransit | Delivered
//	          │        │
//	          ├──> Delivered
//	          └──> Cancelled
//
// Cancelled and Delivered are terminal. Cancellation is only reachable from
// Pending: that is the single edge that triggers stock restoration, and making
// it unrepeatable is what rules out double restoration.
//
// String values are the Spanish names used on the wire and in the database,
// inherited from the system this service replaces.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created.
	// Stock for the order's items is held from the moment of creation.
	Pending

	// InTransit indicates the order left for delivery.
	InTransit

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and its stock restored.
	// Terminal with respect to stock: re-cancelling is rejected.
	Cancelled

	// Problem indicates a delivery incident requiring intervention.
	Problem
)

// getStatusStrings returns the wire/storage names for all Status values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pendiente",
		InTransit: "en_camino",
		Delivered: "entregado",
		Cancelled: "cancelado",
		Problem:   "problema",
	}
}

// getValidStatusStrings returns only valid Status values, for validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pendiente",
		InTransit: "en_camino",
		Delivered: "entregado",
		Cancelled: "cancelado",
		Problem:   "problema",
	}
}

// getStatusTransitions returns the allowed target states for each status.
// Terminal states map to an empty set.
func getStatusTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal states have no outgoing transitions
	return map[Status][]Status{
		Pending:   {InTransit, Delivered, Cancelled},
		InTransit: {Delivered, Problem},
		Problem:   {InTransit, Delivered},
	}
}

// StatusFromString parses a wire/storage name into a Status.
// Returns an error for names outside the closed domain set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value belongs to the closed domain set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire/storage name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return len(getStatusTransitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether the transition s -> target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition to target.
//
// Returns:
//   - (target, nil) on an allowed transition
//   - (0, error) if target is invalid or the edge is not allowed
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("%s cannot transition to %s", s.String(), target.String()))
	}
	return target, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Any other source state returns an error, which is what makes stock
// restoration fire at most once per order.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
