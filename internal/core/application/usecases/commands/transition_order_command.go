package commands

import (
	"errors"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to drive an order through one
// payload-free lifecycle operation (e.g. startPickup, inspection, completed).
// Operations that carry an estimate, a bill or a decision use their own
// commands.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  order.Action
	caller  actor.Actor

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to perform a lifecycle action.
// Validates the order id, the action and the calling actor.
func NewTransitionOrderCommand(orderID kernel.UUID, action order.Action,
	caller actor.Actor) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
		cmd.setCaller(caller),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the lifecycle action to perform.
func (c TransitionOrderCommand) Action() order.Action {
	return c.action
}

// Caller returns the acting user.
func (c TransitionOrderCommand) Caller() actor.Actor {
	return c.caller
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}

func (c *TransitionOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
