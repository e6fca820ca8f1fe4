package commands

import (
	"context"

	"remont/internal/core/domain/model/order"
	"remont/internal/core/domain/services"
	"remont/internal/pkg/errs"
)

// RequestPaymentCommandHandler handles estimate and bill submission by the
// assigned technician.
type RequestPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.NotificationComposer
}

// NewRequestPaymentCommandHandler creates a handler for payment submission.
func NewRequestPaymentCommandHandler(uowFactory OrderUoWFactory) RequestPaymentCommandHandler {
	return RequestPaymentCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the payment submission.
func (h *RequestPaymentCommandHandler) Handle(ctx context.Context, cmd RequestPaymentCommand) error {
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

	switch cmd.Action() {
	case order.ActionWaitingDecision:
		err = aggregate.RequestDecision(cmd.Payment())
	case order.ActionWaitingPayment:
		err = aggregate.RequestPayment(cmd.Payment())
	default:
		err = errs.NewValueIsInvalidError("action")
	}
	if err != nil {
		return err
	}

	if err = saveOrder(ctx, uow, h.composer, aggregate, false); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
