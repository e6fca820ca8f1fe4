package ports

import (
	"context"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// locking: the stored row must still carry the version the aggregate was
	// loaded with, otherwise errs.VersionConflictError is returned and
	// nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, without any
	// actor scoping. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForActor retrieves an order by id, scoped to the calling actor:
	// customers see only orders they own, couriers and technicians only
	// orders assigned to them, admins see everything. A scope miss is
	// indistinguishable from absence and returns errs.ObjectNotFoundError.
	GetForActor(ctx context.Context, id kernel.UUID, caller actor.Actor) (*order.Order, error)

	// GetAllActive retrieves all orders not in a terminal status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
