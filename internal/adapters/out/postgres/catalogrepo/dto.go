// Package catalogrepo provides data transfer objects and mapping functions
// for catalog persistence: service categories, customer addresses and
// service center branches.
package catalogrepo

import (
	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Active bool      `gorm:"index"`
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// AddressDTO represents the database structure for persisting addresses.
// The point is stored as embedded latitude/longitude columns.
type AddressDTO struct {
	ID      uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID   `gorm:"type:uuid;index"`
	Label   string      `gorm:"type:varchar(255);not null"`
	Point   GeoPointDTO `gorm:"embedded;embeddedPrefix:point_"`
}

// TableName overrides GORM's default naming to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// BranchDTO represents the database structure for persisting branches.
type BranchDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name             string      `gorm:"type:varchar(255);not null"`
	Point            GeoPointDTO `gorm:"embedded;embeddedPrefix:point_"`
	CoverageRadiusKm float64
}

// TableName overrides GORM's default naming to use "branches".
func (BranchDTO) TableName() string {
	return "branches"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Lat float64
	Lng float64
}

func categoryFromDomain(category *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:     category.ID().Bytes(),
		Name:   category.Name(),
		Active: category.IsActive(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCategory(id, dto.Name, dto.Active)
}

func addressFromDomain(address *catalog.Address) AddressDTO {
	return AddressDTO{
		ID:      address.ID().Bytes(),
		OwnerID: address.OwnerID().Bytes(),
		Label:   address.Label(),
		Point: GeoPointDTO{
			Lat: address.Point().Lat(),
			Lng: address.Point().Lng(),
		},
	}
}

func addressToDomain(dto AddressDTO) (*catalog.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	point, err := kernel.NewGeoPoint(dto.Point.Lat, dto.Point.Lng)
	if err != nil {
		return nil, err
	}

	return catalog.NewAddress(id, ownerID, dto.Label, point)
}

func branchFromDomain(branch *catalog.Branch) BranchDTO {
	return BranchDTO{
		ID:   branch.ID().Bytes(),
		Name: branch.Name(),
		Point: GeoPointDTO{
			Lat: branch.Point().Lat(),
			Lng: branch.Point().Lng(),
		},
		CoverageRadiusKm: branch.CoverageRadiusKm(),
	}
}

func branchToDomain(dto BranchDTO) (*catalog.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	point, err := kernel.NewGeoPoint(dto.Point.Lat, dto.Point.Lng)
	if err != nil {
		return nil, err
	}

	return catalog.NewBranch(id, dto.Name, point, dto.CoverageRadiusKm)
}
