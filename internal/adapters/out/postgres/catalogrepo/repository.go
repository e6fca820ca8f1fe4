package catalogrepo

import (
	"context"
	"errors"

	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryDirectory implements CategoryDirectory using GORM.
type GormCategoryDirectory struct {
	db *gorm.DB
}

// NewGormCategoryDirectory creates a new GORM category directory.
func NewGormCategoryDirectory(db *gorm.DB) *GormCategoryDirectory {
	return &GormCategoryDirectory{db: db}
}

// Add saves a new category to the database.
func (r *GormCategoryDirectory) Add(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FindActive retrieves an active category by id. Inactive categories are
// indistinguishable from absent ones.
func (r *GormCategoryDirectory) FindActive(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND active = ?", id.Bytes(), true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// GormAddressDirectory implements AddressDirectory using GORM.
type GormAddressDirectory struct {
	db *gorm.DB
}

// NewGormAddressDirectory creates a new GORM address directory.
func NewGormAddressDirectory(db *gorm.DB) *GormAddressDirectory {
	return &GormAddressDirectory{db: db}
}

// Add saves a new address to the database.
func (r *GormAddressDirectory) Add(ctx context.Context, address *catalog.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(address)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Find retrieves an address by id.
func (r *GormAddressDirectory) Find(ctx context.Context, id kernel.UUID) (*catalog.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return addressToDomain(dto)
}

// GormBranchDirectory implements BranchDirectory using GORM.
type GormBranchDirectory struct {
	db *gorm.DB
}

// NewGormBranchDirectory creates a new GORM branch directory.
func NewGormBranchDirectory(db *gorm.DB) *GormBranchDirectory {
	return &GormBranchDirectory{db: db}
}

// Add saves a new branch to the database.
func (r *GormBranchDirectory) Add(ctx context.Context, branch *catalog.Branch) error {
	if err := branch.Validate(); err != nil {
		return err
	}

	dto := branchFromDomain(branch)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves every branch.
func (r *GormBranchDirectory) GetAll(ctx context.Context) ([]*catalog.Branch, error) {
	var dtos []BranchDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	branches := make([]*catalog.Branch, 0, len(dtos))
	for _, dto := range dtos {
		branch, err := branchToDomain(dto)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	return branches, nil
}
