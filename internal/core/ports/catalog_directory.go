package ports

import (
	"context"

	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"
)

// CategoryDirectory resolves service categories referenced by orders.
type CategoryDirectory interface {
	// FindActive retrieves an active category by id. Returns
	// errs.ObjectNotFoundError when the category is absent or inactive.
	FindActive(ctx context.Context, id kernel.UUID) (*catalog.Category, error)
}

// AddressDirectory resolves customer addresses referenced by orders.
type AddressDirectory interface {
	// Find retrieves an address by id. Returns errs.ObjectNotFoundError
	// when absent.
	Find(ctx context.Context, id kernel.UUID) (*catalog.Address, error)
}

// BranchDirectory lists service center branches for coverage checks.
type BranchDirectory interface {
	// GetAll retrieves every branch.
	GetAll(ctx context.Context) ([]*catalog.Branch, error)
}
