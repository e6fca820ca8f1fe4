// Package actor defines the caller roles that drive order lifecycle
// operations, and the Actor value object representing an already
// authenticated caller (role + identity).
package actor

import (
	"fmt"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

// Role names one of the four parties of a repair order.
type Role string

const (
	// RoleAdmin is staff dispatch; admins operate without ownership scoping.
	RoleAdmin Role = "admin"
	// RoleCustomer is the requesting customer (individual or company account).
	RoleCustomer Role = "customer"
	// RoleCourier is the field courier handling pickup/return logistics.
	RoleCourier Role = "courier"
	// RoleTechnician is the repair technician.
	RoleTechnician Role = "technician"
)

// RoleFromString parses a role name, rejecting unknown values.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the four known roles.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleCustomer, RoleCourier, RoleTechnician:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire name of the role.
func (r Role) String() string {
	return string(r)
}

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is an authenticated caller: a role plus the caller's identity.
// The core trusts this input; authentication happens upstream.
type Actor struct {
	role  Role
	id    kernel.UUID
	guard guard.ConstructorGuard
}

// NewActor creates an Actor with a validated role and identity.
func NewActor(role Role, id kernel.UUID) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		role:  role,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
