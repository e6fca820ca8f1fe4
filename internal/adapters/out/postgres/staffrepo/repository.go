package staffrepo

import (
	"context"
	"errors"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/staff"
	"remont/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTechnicianDirectory implements TechnicianDirectory using GORM.
type GormTechnicianDirectory struct {
	db *gorm.DB
}

// NewGormTechnicianDirectory creates a new GORM technician directory.
func NewGormTechnicianDirectory(db *gorm.DB) *GormTechnicianDirectory {
	return &GormTechnicianDirectory{db: db}
}

// Add saves a new technician to the database.
func (r *GormTechnicianDirectory) Add(ctx context.Context, technician *staff.Technician) error {
	if err := technician.Validate(); err != nil {
		return err
	}

	dto := technicianFromDomain(technician)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FindActive retrieves an active technician by id. Inactive technicians are
// indistinguishable from absent ones.
func (r *GormTechnicianDirectory) FindActive(ctx context.Context, id kernel.UUID) (*staff.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TechnicianDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND active = ?", id.Bytes(), true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technician", id.String())
		}
		return nil, err
	}

	return technicianToDomain(dto)
}

// GormCourierDirectory implements CourierDirectory using GORM.
type GormCourierDirectory struct {
	db *gorm.DB
}

// NewGormCourierDirectory creates a new GORM courier directory.
func NewGormCourierDirectory(db *gorm.DB) *GormCourierDirectory {
	return &GormCourierDirectory{db: db}
}

// Add saves a new courier to the database.
func (r *GormCourierDirectory) Add(ctx context.Context, courier *staff.Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}

	dto := courierFromDomain(courier)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FindActive retrieves an active courier by id. Inactive couriers are
// indistinguishable from absent ones.
func (r *GormCourierDirectory) FindActive(ctx context.Context, id kernel.UUID) (*staff.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND active = ?", id.Bytes(), true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return courierToDomain(dto)
}
