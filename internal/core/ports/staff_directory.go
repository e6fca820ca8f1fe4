// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, directories, the notification
// outbox and the unit of work.
package ports

import (
	"context"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/staff"
)

// TechnicianDirectory resolves technician reassignment targets. Used by the
// administrative order operation to validate that a supplied technician
// exists and is active before assignment.
type TechnicianDirectory interface {
	// FindActive retrieves an active technician by id. Returns
	// errs.ObjectNotFoundError when the technician is absent or inactive.
	FindActive(ctx context.Context, id kernel.UUID) (*staff.Technician, error)
}

// CourierDirectory resolves courier reassignment targets.
type CourierDirectory interface {
	// FindActive retrieves an active courier by id. Returns
	// errs.ObjectNotFoundError when the courier is absent or inactive.
	FindActive(ctx context.Context, id kernel.UUID) (*staff.Courier, error)
}
