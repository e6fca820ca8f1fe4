package commands

import (
	"context"

	"remont/internal/core/domain/services"
	"remont/internal/pkg/errs"
)

// TransitionOrderCommandHandler handles payload-free lifecycle operations.
//
// Authorization is the role-scoped lookup: the handler loads the order
// through the caller's scope, so a courier can only advance orders assigned
// to them and a customer only orders they own. An action bound to a
// different role than the caller's is rejected the same way a scope miss
// is, without revealing that the order exists.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.NotificationComposer
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle operations.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the lifecycle transition.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Action().ActorRole() != cmd.Caller().Role() {
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

	if err = aggregate.Apply(cmd.Action()); err != nil {
		return err
	}

	if err = saveOrder(ctx, uow, h.composer, aggregate, false); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
