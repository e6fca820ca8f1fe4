package commands

import (
	"errors"
	"strings"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

var (
	ErrUpdateAdminOrderCommandIsNotConstructed = errors.New(
		"UpdateAdminOrderCommand must be created via NewUpdateAdminOrderCommand constructor",
	)
)

// UpdateAdminOrderCommand represents the administrative override of an order:
// direct status assignment, service type change and staff (re)assignment.
// None of it passes the lifecycle transition table, so every use must carry
// a justification that ends up in the audit notification.
type UpdateAdminOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	caller        actor.Actor
	status        *order.Status
	serviceType   *order.ServiceType
	technicianID  *kernel.UUID
	courierID     *kernel.UUID
	justification string

	guard guard.ConstructorGuard
}

// NewUpdateAdminOrderCommand creates an administrative override command.
// At least one of status, service type, technician or courier must be
// supplied, and the justification is mandatory.
func NewUpdateAdminOrderCommand(orderID kernel.UUID, caller actor.Actor,
	status *order.Status, serviceType *order.ServiceType,
	technicianID, courierID *kernel.UUID, justification string) (UpdateAdminOrderCommand, error) {
	cmd := UpdateAdminOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setChanges(status, serviceType, technicianID, courierID),
		cmd.setJustification(justification),
	); err != nil {
		return UpdateAdminOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAdminOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAdminOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateAdminOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the acting admin.
func (c UpdateAdminOrderCommand) Caller() actor.Actor {
	return c.caller
}

// Status returns the status to set, or nil when untouched.
func (c UpdateAdminOrderCommand) Status() *order.Status {
	return c.status
}

// ServiceType returns the service type to set, or nil when untouched.
func (c UpdateAdminOrderCommand) ServiceType() *order.ServiceType {
	return c.serviceType
}

// TechnicianID returns the technician to assign, or nil when untouched.
func (c UpdateAdminOrderCommand) TechnicianID() *kernel.UUID {
	return c.technicianID
}

// CourierID returns the courier to assign, or nil when untouched.
func (c UpdateAdminOrderCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// Justification returns the mandatory override justification.
func (c UpdateAdminOrderCommand) Justification() string {
	return c.justification
}

func (c *UpdateAdminOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateAdminOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateAdminOrderCommand) setChanges(status *order.Status, serviceType *order.ServiceType,
	technicianID, courierID *kernel.UUID) error {
	if status == nil && serviceType == nil && technicianID == nil && courierID == nil {
		return errs.NewValueIsRequiredError("at least one field to override")
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if serviceType != nil {
		if err := serviceType.Validate(); err != nil {
			return err
		}
	}
	if technicianID != nil {
		if err := technicianID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("technician", err)
		}
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("courier", err)
		}
	}

	c.status = status
	c.serviceType = serviceType
	c.technicianID = technicianID
	c.courierID = courierID
	return nil
}

func (c *UpdateAdminOrderCommand) setJustification(justification string) error {
	if strings.TrimSpace(justification) == "" {
		return errs.NewValueIsRequiredError("justification")
	}
	c.justification = justification
	return nil
}
