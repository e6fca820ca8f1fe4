package commands

import (
	"context"

	"remont/internal/core/domain/model/order"
	"remont/internal/core/domain/services"
	"remont/internal/core/ports"
	"remont/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates the referenced category and address, checks branch coverage for
// the address, and persists the order in the pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	categories ports.CategoryDirectory
	addresses  ports.AddressDirectory
	branches   ports.BranchDirectory
	locator    services.BranchLocator
	composer   services.NotificationComposer
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory,
	categories ports.CategoryDirectory, addresses ports.AddressDirectory,
	branches ports.BranchDirectory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		categories: categories,
		addresses:  addresses,
		branches:   branches,
		locator:    services.NewBranchLocator(),
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the order creation command.
//
// The category must exist and be active, the address must exist, belong to
// the ordering customer and lie within at least one branch's coverage radius.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.categories.FindActive(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	address, err := h.addresses.Find(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !address.IsOwnedBy(cmd.Customer().ID()) {
		return errs.NewObjectNotFoundError("address", cmd.AddressID())
	}

	branches, err := h.branches.GetAll(ctx)
	if err != nil {
		return err
	}
	if !h.locator.IsServiceable(address.Point(), branches) {
		return errs.NewValueIsInvalidError("address is not covered by any branch")
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.ServiceType(),
		cmd.Brand(), cmd.Model(), cmd.Description(), cmd.CategoryID(), cmd.AddressID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = saveOrder(ctx, uow, h.composer, aggregate, true); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
