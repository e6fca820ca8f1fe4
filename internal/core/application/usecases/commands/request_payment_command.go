package commands

import (
	"errors"
	"fmt"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

var (
	ErrRequestPaymentCommandIsNotConstructed = errors.New(
		"RequestPaymentCommand must be created via NewRequestPaymentCommand constructor",
	)
)

// RequestPaymentCommand represents a technician submitting an amount the
// customer must decide on: either the repair estimate (waitingDecision) or
// the on-site bill (waitingPayment).
type RequestPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  order.Action
	caller  actor.Actor
	payment order.Payment

	guard guard.ConstructorGuard
}

// NewRequestPaymentCommand creates a command carrying a payment payload.
// The action must be one of the payment-carrying lifecycle operations.
func NewRequestPaymentCommand(orderID kernel.UUID, action order.Action,
	caller actor.Actor, amount float64, reason string) (RequestPaymentCommand, error) {
	cmd := RequestPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
		cmd.setCaller(caller),
		cmd.setPayment(amount, reason),
	); err != nil {
		return RequestPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRequestPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RequestPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the payment-carrying lifecycle action.
func (c RequestPaymentCommand) Action() order.Action {
	return c.action
}

// Caller returns the acting user.
func (c RequestPaymentCommand) Caller() actor.Actor {
	return c.caller
}

// Payment returns the submitted amount and reason.
func (c RequestPaymentCommand) Payment() order.Payment {
	return c.payment
}

func (c *RequestPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestPaymentCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	if !action.RequiresPayment() {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%s does not carry a payment", action.OperationName()))
	}
	c.action = action
	return nil
}

func (c *RequestPaymentCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RequestPaymentCommand) setPayment(amount float64, reason string) error {
	payment, err := order.NewPayment(amount, reason)
	if err != nil {
		return err
	}
	c.payment = payment
	return nil
}
