package orderrepo

import (
	"context"
	"errors"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order using optimistic locking. The write only
// lands when the stored row still carries the version the aggregate was
// loaded with; the stored version is bumped by one in the same statement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID without actor scoping.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForActor retrieves an order by ID with the caller's scope applied in the
// query itself, so a scope miss is indistinguishable from absence.
func (r *GormOrderRepository) GetForActor(ctx context.Context, id kernel.UUID, caller actor.Actor) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("id = ?", id.Bytes())
	switch caller.Role() {
	case actor.RoleCustomer:
		query = query.Where("company_id = ? OR individual_id = ?", caller.ID().Bytes(), caller.ID().Bytes())
	case actor.RoleCourier:
		query = query.Where("courier_id = ?", caller.ID().Bytes())
	case actor.RoleTechnician:
		query = query.Where("technician_id = ?", caller.ID().Bytes())
	case actor.RoleAdmin:
	}

	var dto OrderDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all orders not in a terminal status.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	terminal := []int{
		int(order.StatusCompleted),
		int(order.StatusCancelled),
		int(order.StatusCompletedOnSiteInstalling),
		int(order.StatusCompletedOnSiteRepairing),
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status NOT IN ?", terminal).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
