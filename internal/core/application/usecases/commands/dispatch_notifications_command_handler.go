package commands

import (
	"context"
	"log/slog"

	"remont/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains the notification outbox.
// Delivery is best effort: an envelope that fails to send stays pending and
// is retried on the next cycle, and a failure never propagates to the
// operation that produced the notification.
type DispatchNotificationsCommandHandler struct {
	outbox ports.NotificationOutbox
	client ports.NotificationClient
	logger *slog.Logger
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox drain
// cycles.
func NewDispatchNotificationsCommandHandler(outbox ports.NotificationOutbox,
	client ports.NotificationClient, logger *slog.Logger) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		outbox: outbox,
		client: client,
		logger: logger,
	}
}

// Handle delivers up to Limit pending envelopes.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.outbox.GetPending(ctx, cmd.Limit())
	if err != nil {
		return err
	}

	for _, envelope := range pending {
		if err := h.client.Send(ctx, envelope); err != nil {
			h.logger.WarnContext(ctx, "notification delivery failed",
				"notification_id", envelope.ID.String(),
				"order_id", envelope.OrderID.String(),
				"role", string(envelope.Role),
				"error", err)
			continue
		}

		if err := h.outbox.MarkSent(ctx, envelope.ID); err != nil {
			h.logger.ErrorContext(ctx, "failed to mark notification as sent",
				"notification_id", envelope.ID.String(),
				"error", err)
		}
	}

	return nil
}
