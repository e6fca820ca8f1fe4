// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return flat response
// structures, bypassing the aggregate and the unit of work.
package queries

import (
	"errors"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order scoped to the calling actor. The scope
// is the authorization: a caller outside the order's parties gets the same
// not-found answer as for an order that does not exist.
type GetOrderQuery struct {
	orderID kernel.UUID
	caller  actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order view.
func NewGetOrderQuery(orderID kernel.UUID, caller actor.Actor) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := caller.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Caller returns the acting user.
func (q GetOrderQuery) Caller() actor.Actor {
	return q.caller
}

// GetOrderQueryResponse is the flat order view returned to callers.
// Optional fields are nil when unset.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Status        string
	StatusLabel   string
	ServiceType   string
	Brand         string
	Model         string
	Description   string
	CategoryID    kernel.UUID
	AddressID     kernel.UUID
	TechnicianID  *kernel.UUID
	CourierID     *kernel.UUID
	CancelReason  string
	PaymentAmount *float64
	PaymentReason *string
	Version       int64
}
