package commands

import (
	"context"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/order"
	"remont/internal/core/domain/services"
	"remont/internal/core/ports"
	"remont/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles customer self-service edits of pending
// orders. A changed address is re-validated against branch coverage.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	categories ports.CategoryDirectory
	addresses  ports.AddressDirectory
	branches   ports.BranchDirectory
	locator    services.BranchLocator
	composer   services.NotificationComposer
}

// NewUpdateOrderCommandHandler creates a handler for pending order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory,
	categories ports.CategoryDirectory, addresses ports.AddressDirectory,
	branches ports.BranchDirectory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		categories: categories,
		addresses:  addresses,
		branches:   branches,
		locator:    services.NewBranchLocator(),
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the pending order edit.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Caller().Role() != actor.RoleCustomer {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForActor(ctx, cmd.OrderID(), cmd.Caller())
	if err != nil {
		return err
	}

	if err = h.applyEdits(ctx, cmd, aggregate); err != nil {
		return err
	}

	if err = saveOrder(ctx, uow, h.composer, aggregate, false); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateOrderCommandHandler) applyEdits(ctx context.Context,
	cmd UpdateOrderCommand, aggregate *order.Order) error {
	if cmd.Brand() != nil || cmd.Model() != nil || cmd.Description() != nil {
		brand := aggregate.Brand()
		model := aggregate.Model()
		description := aggregate.Description()
		if cmd.Brand() != nil {
			brand = *cmd.Brand()
		}
		if cmd.Model() != nil {
			model = *cmd.Model()
		}
		if cmd.Description() != nil {
			description = *cmd.Description()
		}
		if err := aggregate.UpdateDetails(brand, model, description); err != nil {
			return err
		}
	}

	if cmd.CategoryID() != nil {
		if _, err := h.categories.FindActive(ctx, *cmd.CategoryID()); err != nil {
			return err
		}
		if err := aggregate.ChangeCategory(*cmd.CategoryID()); err != nil {
			return err
		}
	}

	if cmd.AddressID() != nil {
		address, err := h.addresses.Find(ctx, *cmd.AddressID())
		if err != nil {
			return err
		}
		if !address.IsOwnedBy(cmd.Caller().ID()) {
			return errs.NewObjectNotFoundError("address", *cmd.AddressID())
		}
		branches, err := h.branches.GetAll(ctx)
		if err != nil {
			return err
		}
		if !h.locator.IsServiceable(address.Point(), branches) {
			return errs.NewValueIsInvalidError("address is not covered by any branch")
		}
		if err := aggregate.ChangeAddress(*cmd.AddressID()); err != nil {
			return err
		}
	}

	return nil
}
