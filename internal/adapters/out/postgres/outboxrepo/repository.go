package outboxrepo

import (
	"context"
	"errors"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/ports"
	"remont/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationOutbox implements NotificationOutbox using GORM.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates a new GORM notification outbox.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Enqueue persists envelopes as pending rows.
func (r *GormNotificationOutbox) Enqueue(ctx context.Context, envelopes []ports.NotificationEnvelope) error {
	if len(envelopes) == 0 {
		return nil
	}

	dtos := make([]NotificationDTO, 0, len(envelopes))
	for _, envelope := range envelopes {
		if err := envelope.ID.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromEnvelope(envelope))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetPending retrieves up to limit undelivered envelopes, oldest first.
func (r *GormNotificationOutbox) GetPending(ctx context.Context, limit int) ([]ports.NotificationEnvelope, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit must be positive")
	}

	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).
		Where("sent = ?", false).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	envelopes := make([]ports.NotificationEnvelope, 0, len(dtos))
	for _, dto := range dtos {
		envelope, err := toEnvelope(dto)
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, envelope)
	}

	return envelopes, nil
}

// MarkSent flags an envelope as delivered.
func (r *GormNotificationOutbox) MarkSent(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent", true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("notification", id.String())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}
