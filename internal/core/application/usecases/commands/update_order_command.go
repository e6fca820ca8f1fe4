package commands

import (
	"errors"
	"strings"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a customer's self-service edit of a pending
// order: device info, category and address. Status is never touched.
// Optional fields left nil are not changed.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	caller      actor.Actor
	brand       *string
	model       *string
	description *string
	categoryID  *kernel.UUID
	addressID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit a pending order. At least
// one field must be supplied.
func NewUpdateOrderCommand(orderID kernel.UUID, caller actor.Actor,
	brand, model, description *string, categoryID, addressID *kernel.UUID) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setFields(brand, model, description, categoryID, addressID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the acting user.
func (c UpdateOrderCommand) Caller() actor.Actor {
	return c.caller
}

// Brand returns the new brand, or nil when unchanged.
func (c UpdateOrderCommand) Brand() *string {
	return c.brand
}

// Model returns the new model, or nil when unchanged.
func (c UpdateOrderCommand) Model() *string {
	return c.model
}

// Description returns the new description, or nil when unchanged.
func (c UpdateOrderCommand) Description() *string {
	return c.description
}

// CategoryID returns the new category, or nil when unchanged.
func (c UpdateOrderCommand) CategoryID() *kernel.UUID {
	return c.categoryID
}

// AddressID returns the new address, or nil when unchanged.
func (c UpdateOrderCommand) AddressID() *kernel.UUID {
	return c.addressID
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateOrderCommand) setFields(brand, model, description *string,
	categoryID, addressID *kernel.UUID) error {
	if brand == nil && model == nil && description == nil && categoryID == nil && addressID == nil {
		return errs.NewValueIsRequiredError("at least one field to update")
	}

	if brand != nil && strings.TrimSpace(*brand) == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	if model != nil && strings.TrimSpace(*model) == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("category", err)
		}
	}
	if addressID != nil {
		if err := addressID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("address", err)
		}
	}

	c.brand = brand
	c.model = model
	c.description = description
	c.categoryID = categoryID
	c.addressID = addressID
	return nil
}
