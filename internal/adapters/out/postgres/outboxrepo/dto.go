// Package outboxrepo persists notification envelopes in the transactional
// outbox table. Envelopes are written in the same transaction as the order
// mutation that produced them and drained later by the dispatch job.
package outboxrepo

import (
	"time"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/ports"

	"github.com/google/uuid"
)

// NotificationDTO represents one outbox row. RecipientID is null for admin
// broadcasts. CreatedAt orders the drain so delivery follows production order.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	Role        string
	RecipientID *uuid.UUID `gorm:"type:uuid"`
	Message     string
	Sent        bool `gorm:"index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "notification_outbox".
func (NotificationDTO) TableName() string {
	return "notification_outbox"
}

func fromEnvelope(envelope ports.NotificationEnvelope) NotificationDTO {
	dto := NotificationDTO{
		ID:      envelope.ID.Bytes(),
		OrderID: envelope.OrderID.Bytes(),
		Role:    envelope.Role.String(),
		Message: envelope.Message,
	}

	if envelope.RecipientID != nil {
		raw := envelope.RecipientID.Bytes()
		dto.RecipientID = &raw
	}

	return dto
}

func toEnvelope(dto NotificationDTO) (ports.NotificationEnvelope, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.NotificationEnvelope{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ports.NotificationEnvelope{}, err
	}

	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return ports.NotificationEnvelope{}, err
	}

	var recipientID *kernel.UUID
	if dto.RecipientID != nil {
		rID, recipientErr := kernel.UUIDFromBytes((*dto.RecipientID)[:])
		if recipientErr != nil {
			return ports.NotificationEnvelope{}, recipientErr
		}
		recipientID = &rID
	}

	return ports.NotificationEnvelope{
		ID:          id,
		OrderID:     orderID,
		Role:        role,
		RecipientID: recipientID,
		Message:     dto.Message,
	}, nil
}
