package commands

import (
	"context"
	"fmt"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/core/domain/services"
	"remont/internal/core/ports"
	"remont/internal/pkg/errs"
)

// UpdateAdminOrderCommandHandler handles the administrative override of an
// order. Reassignment targets are validated against the staff directories
// before any mutation.
type UpdateAdminOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	technicians ports.TechnicianDirectory
	couriers    ports.CourierDirectory
	composer    services.NotificationComposer
}

// NewUpdateAdminOrderCommandHandler creates a handler for admin overrides.
func NewUpdateAdminOrderCommandHandler(uowFactory OrderUoWFactory,
	technicians ports.TechnicianDirectory, couriers ports.CourierDirectory) UpdateAdminOrderCommandHandler {
	return UpdateAdminOrderCommandHandler{
		uowFactory:  uowFactory,
		technicians: technicians,
		couriers:    couriers,
		composer:    services.NewNotificationComposer(),
	}
}

// Handle processes the administrative override.
//
// The recipient set for status and service type changes is captured before
// any staff mutation, so the staff engaged at the time of the override are
// the ones informed about it.
func (h *UpdateAdminOrderCommandHandler) Handle(ctx context.Context, cmd UpdateAdminOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Caller().Role() != actor.RoleAdmin {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if cmd.TechnicianID() != nil {
		if _, err := h.technicians.FindActive(ctx, *cmd.TechnicianID()); err != nil {
			return err
		}
	}
	if cmd.CourierID() != nil {
		if _, err := h.couriers.FindActive(ctx, *cmd.CourierID()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	recipients := engagedRoles(aggregate)

	if cmd.TechnicianID() != nil {
		if err = aggregate.AssignTechnician(*cmd.TechnicianID()); err != nil {
			return err
		}
	}
	if cmd.CourierID() != nil {
		if err = aggregate.AssignCourier(*cmd.CourierID()); err != nil {
			return err
		}
	}
	if cmd.ServiceType() != nil {
		if err = aggregate.ChangeServiceType(*cmd.ServiceType(), recipients); err != nil {
			return err
		}
	}
	if cmd.Status() != nil {
		if err = aggregate.OverrideStatus(*cmd.Status(), recipients); err != nil {
			return err
		}
	}

	if err = saveOrder(ctx, uow, h.composer, aggregate, false); err != nil {
		return err
	}

	audit := ports.NotificationEnvelope{
		ID:      kernel.NewUUID(),
		OrderID: aggregate.ID(),
		Role:    actor.RoleAdmin,
		Message: fmt.Sprintf("ადმინისტრაციული ცვლილება შეკვეთაზე %s: %s",
			aggregate.ID(), cmd.Justification()),
	}
	if err = uow.NotificationOutbox().Enqueue(ctx, []ports.NotificationEnvelope{audit}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// engagedRoles returns the audience for an override: admin and customer
// always, plus the staff roles currently assigned to the order.
func engagedRoles(aggregate *order.Order) []actor.Role {
	roles := []actor.Role{actor.RoleAdmin, actor.RoleCustomer}
	if aggregate.Technician() != nil {
		roles = append(roles, actor.RoleTechnician)
	}
	if aggregate.Courier() != nil {
		roles = append(roles, actor.RoleCourier)
	}
	return roles
}
