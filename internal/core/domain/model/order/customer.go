package order

import (
	"fmt"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

// CustomerKind discriminates the two mutually-exclusive customer account
// kinds an order can belong to.
type CustomerKind int

const (
	// CustomerKindUnknown represents an invalid or undefined kind.
	CustomerKindUnknown CustomerKind = iota

	// CustomerKindIndividual is a personal account.
	CustomerKindIndividual
	// CustomerKindCompany is a business account.
	CustomerKindCompany
)

// Validate checks if the kind is one of the two defined customer kinds.
func (k CustomerKind) Validate() error {
	switch k {
	case CustomerKindIndividual, CustomerKindCompany:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("customerKind",
			fmt.Errorf("%d is not a valid customer kind", int(k)))
	}
}

// String returns the canonical name of the kind.
func (k CustomerKind) String() string {
	switch k {
	case CustomerKindIndividual:
		return "Individual"
	case CustomerKindCompany:
		return "Company"
	default:
		return "Unknown"
	}
}

// ErrCustomerRefIsNotConstructed is returned when validating a zero-value
// CustomerRef.
var ErrCustomerRefIsNotConstructed = errs.NewValueIsRequiredError(
	"customer reference must be created via NewIndividualCustomer or NewCompanyCustomer")

// CustomerRef is a tagged union identifying the owning customer of an order:
// exactly one account kind plus that account's identity, resolved once at
// construction time.
type CustomerRef struct {
	kind  CustomerKind
	id    kernel.UUID
	guard guard.ConstructorGuard
}

// NewIndividualCustomer creates a customer reference to a personal account.
func NewIndividualCustomer(id kernel.UUID) (CustomerRef, error) {
	return newCustomerRef(CustomerKindIndividual, id)
}

// NewCompanyCustomer creates a customer reference to a business account.
func NewCompanyCustomer(id kernel.UUID) (CustomerRef, error) {
	return newCustomerRef(CustomerKindCompany, id)
}

func newCustomerRef(kind CustomerKind, id kernel.UUID) (CustomerRef, error) {
	if err := id.Validate(); err != nil {
		return CustomerRef{}, err
	}

	return CustomerRef{
		kind:  kind,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Kind returns the account kind of the reference.
func (c CustomerRef) Kind() CustomerKind {
	return c.kind
}

// ID returns the customer account's identity.
func (c CustomerRef) ID() kernel.UUID {
	return c.id
}

// IsOwnedBy reports whether the given caller identity owns this reference.
func (c CustomerRef) IsOwnedBy(callerID kernel.UUID) bool {
	return c.id.IsEqual(callerID)
}

// Validate ensures the reference was created via a constructor.
func (c CustomerRef) Validate() error {
	return c.guard.Validate(ErrCustomerRefIsNotConstructed)
}
