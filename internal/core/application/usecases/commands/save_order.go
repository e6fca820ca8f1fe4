package commands

import (
	"context"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/core/domain/services"
	"remont/internal/core/ports"
)

// saveOrder persists the aggregate and enqueues the notifications composed
// from its recorded events in the same transaction. The caller still commits.
func saveOrder(ctx context.Context, uow OrderUoW, composer services.NotificationComposer,
	aggregate *order.Order, isNew bool) error {
	repo := uow.OrderRepository()

	var err error
	if isNew {
		err = repo.Add(ctx, aggregate)
	} else {
		err = repo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	notifications := composer.Compose(aggregate, aggregate.Events())
	if len(notifications) > 0 {
		envelopes := make([]ports.NotificationEnvelope, 0, len(notifications))
		for _, n := range notifications {
			envelopes = append(envelopes, ports.NotificationEnvelope{
				ID:          kernel.NewUUID(),
				OrderID:     aggregate.ID(),
				Role:        n.Role,
				RecipientID: n.RecipientID,
				Message:     n.Message,
			})
		}
		if err := uow.NotificationOutbox().Enqueue(ctx, envelopes); err != nil {
			return err
		}
	}

	aggregate.ClearEvents()
	return nil
}
