package commands

import (
	"context"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/services"
	"remont/internal/pkg/errs"
)

// DecideRepairCommandHandler handles the customer's verdict on a repair
// estimate.
type DecideRepairCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.NotificationComposer
}

// NewDecideRepairCommandHandler creates a handler for estimate decisions.
func NewDecideRepairCommandHandler(uowFactory OrderUoWFactory) DecideRepairCommandHandler {
	return DecideRepairCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the estimate decision.
func (h *DecideRepairCommandHandler) Handle(ctx context.Context, cmd DecideRepairCommand) error {
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

	if cmd.Decision() == RepairDecisionApprove {
		err = aggregate.ApproveRepair()
	} else {
		err = aggregate.RejectRepair(cmd.Reason())
	}
	if err != nil {
		return err
	}

	if err = saveOrder(ctx, uow, h.composer, aggregate, false); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
