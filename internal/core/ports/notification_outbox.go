package ports

import (
	"context"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
)

// NotificationEnvelope is one outgoing message persisted in the outbox.
// RecipientID is nil for admin broadcasts.
type NotificationEnvelope struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Role        actor.Role
	RecipientID *kernel.UUID
	Message     string
}

// NotificationOutbox stores composed notifications in the same transaction as
// the state change that produced them. A separate dispatch job drains the
// outbox, so delivery failures can never corrupt or roll back an order
// mutation.
type NotificationOutbox interface {
	// Enqueue persists envelopes as pending. Must be called inside the unit
	// of work of the producing operation.
	Enqueue(ctx context.Context, envelopes []NotificationEnvelope) error

	// GetPending retrieves up to limit undelivered envelopes, oldest first.
	GetPending(ctx context.Context, limit int) ([]NotificationEnvelope, error)

	// MarkSent flags an envelope as delivered.
	MarkSent(ctx context.Context, id kernel.UUID) error
}

// NotificationClient delivers a single envelope to the external notification
// service. Implementations must treat delivery as best effort: the caller
// logs failures and retries on the next dispatch cycle.
type NotificationClient interface {
	Send(ctx context.Context, envelope NotificationEnvelope) error
}
