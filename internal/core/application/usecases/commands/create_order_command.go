package commands

import (
	"errors"
	"strings"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to file a new repair or
// installation order. The order starts in the pending status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customer    order.CustomerRef
	serviceType order.ServiceType
	brand       string
	model       string
	description string
	categoryID  kernel.UUID
	addressID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to file a new order.
// Validates identifiers, the customer reference, the service type and the
// device info. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID kernel.UUID, customer order.CustomerRef,
	serviceType order.ServiceType, brand, model, description string,
	categoryID, addressID kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setServiceType(serviceType),
		cmd.setDetails(brand, model, description),
		cmd.setCategoryID(categoryID),
		cmd.setAddressID(addressID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the owning customer reference.
func (c CreateOrderCommand) Customer() order.CustomerRef {
	return c.customer
}

// ServiceType returns the requested service type.
func (c CreateOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

// Brand returns the device brand.
func (c CreateOrderCommand) Brand() string {
	return c.brand
}

// Model returns the device model.
func (c CreateOrderCommand) Model() string {
	return c.model
}

// Description returns the problem description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// CategoryID returns the referenced service category.
func (c CreateOrderCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// AddressID returns the referenced service address.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerRef) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType order.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setDetails(brand, model, description string) error {
	if strings.TrimSpace(brand) == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	if strings.TrimSpace(model) == "" {
		return errs.NewValueIsRequiredError("model")
	}
	c.brand = brand
	c.model = model
	c.description = description
	return nil
}

func (c *CreateOrderCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("category", err)
	}
	c.categoryID = categoryID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("address", err)
	}
	c.addressID = addressID
	return nil
}
