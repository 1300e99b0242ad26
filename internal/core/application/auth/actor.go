// Package auth models the acting identity handed to the application layer.
//
// Identity issuance and credential verification live outside this system; what
// arrives here is an already-authenticated actor reference plus a role. The
// command handlers stay authorization-agnostic and operate on validated
// inputs only: every capability check happens in the calling layer, through
// the explicit yes/no methods on Actor.
package auth

import (
	"fmt"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Role is the closed set of actor roles in the system.
type Role string

const (
	// RoleAdmin manages the catalog and sees every order.
	RoleAdmin Role = "admin"

	// RoleCustomer places orders and sees only their own.
	RoleCustomer Role = "cliente"

	// RoleCourier handles deliveries and has no order visibility here;
	// courier workflows live in the external delivery system.
	RoleCourier Role = "repartidor"
)

// RoleFromString parses a role name. Returns an error for names outside the
// closed set.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer, RoleCourier:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Actor is an authenticated identity with a role.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

// NewActor creates an actor after validating the identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := RoleFromString(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}

// CanManageCatalog reports whether the actor may create catalog products.
func (a Actor) CanManageCatalog() bool {
	return a.Role == RoleAdmin
}

// CanCreateOrders reports whether the actor may place orders.
func (a Actor) CanCreateOrders() bool {
	return a.Role == RoleCustomer
}

// CanViewAllOrders reports whether the actor sees every order.
func (a Actor) CanViewAllOrders() bool {
	return a.Role == RoleAdmin
}

// CanModifyOrder reports whether the actor may update or cancel the order
// owned by customerID.
func (a Actor) CanModifyOrder(customerID kernel.UUID) bool {
	return a.Role == RoleAdmin || (a.Role == RoleCustomer && a.ID.IsEqual(customerID))
}
