// Package staffrepo provides data transfer objects and mapping functions for
// staff directory persistence. Technicians and couriers are stored in
// separate tables and looked up by the administrative reassignment flow.
package staffrepo

import (
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// TechnicianDTO represents the database structure for persisting technicians.
type TechnicianDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(32);not null"`
	Active bool      `gorm:"index"`
}

// TableName overrides GORM's default naming to use "technicians".
func (TechnicianDTO) TableName() string {
	return "technicians"
}

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(32);not null"`
	Active bool      `gorm:"index"`
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

func technicianFromDomain(technician *staff.Technician) TechnicianDTO {
	return TechnicianDTO{
		ID:     technician.ID().Bytes(),
		Name:   technician.Name(),
		Phone:  technician.Phone(),
		Active: technician.IsActive(),
	}
}

func technicianToDomain(dto TechnicianDTO) (*staff.Technician, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreTechnician(id, dto.Name, dto.Phone, dto.Active)
}

func courierFromDomain(courier *staff.Courier) CourierDTO {
	return CourierDTO{
		ID:     courier.ID().Bytes(),
		Name:   courier.Name(),
		Phone:  courier.Phone(),
		Active: courier.IsActive(),
	}
}

func courierToDomain(dto CourierDTO) (*staff.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreCourier(id, dto.Name, dto.Phone, dto.Active)
}
