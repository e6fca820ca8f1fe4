// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Exactly one of CompanyID and IndividualID is set, mirroring the customer
// reference's account kind. Staff columns are indexed because role-scoped
// lookups filter on them.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID     *uuid.UUID `gorm:"type:uuid;index"`
	IndividualID  *uuid.UUID `gorm:"type:uuid;index"`
	ServiceType   int
	Status        int `gorm:"index"`
	Brand         string
	Model         string
	Description   string
	CategoryID    uuid.UUID  `gorm:"type:uuid"`
	AddressID     uuid.UUID  `gorm:"type:uuid"`
	TechnicianID  *uuid.UUID `gorm:"type:uuid;index"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index"`
	CancelReason  string
	PaymentAmount *float64
	PaymentReason *string
	Version       int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the customer reference into the column matching its kind and flattens
// the optional payment into nullable columns.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ServiceType:  int(aggregate.ServiceType()),
		Status:       int(aggregate.Status()),
		Brand:        aggregate.Brand(),
		Model:        aggregate.Model(),
		Description:  aggregate.Description(),
		CategoryID:   aggregate.CategoryID().Bytes(),
		AddressID:    aggregate.AddressID().Bytes(),
		CancelReason: aggregate.CancelReason(),
		Version:      aggregate.Version(),
	}

	customerID := aggregate.Customer().ID().Bytes()
	if aggregate.Customer().Kind() == order.CustomerKindCompany {
		dto.CompanyID = &customerID
	} else {
		dto.IndividualID = &customerID
	}

	if id := aggregate.Technician(); id != nil {
		raw := id.Bytes()
		dto.TechnicianID = &raw
	}
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		dto.CourierID = &raw
	}

	if p := aggregate.Payment(); p != nil {
		amount := p.Amount()
		reason := p.Reason()
		dto.PaymentAmount = &amount
		dto.PaymentReason = &reason
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including staff assignments and the
// payment side channel using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := customerFromColumns(dto)
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	technicianID, err := optionalUUID(dto.TechnicianID)
	if err != nil {
		return nil, err
	}
	courierID, err := optionalUUID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	var payment *order.Payment
	if dto.PaymentAmount != nil {
		reason := ""
		if dto.PaymentReason != nil {
			reason = *dto.PaymentReason
		}
		p, paymentErr := order.NewPayment(*dto.PaymentAmount, reason)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payment = &p
	}

	return order.RestoreOrder(id, customer, order.ServiceType(dto.ServiceType), order.Status(dto.Status),
		dto.Brand, dto.Model, dto.Description, categoryID, addressID,
		technicianID, courierID, dto.CancelReason, payment, dto.Version)
}

func customerFromColumns(dto OrderDTO) (order.CustomerRef, error) {
	if dto.CompanyID != nil {
		id, err := kernel.UUIDFromBytes((*dto.CompanyID)[:])
		if err != nil {
			return order.CustomerRef{}, err
		}
		return order.NewCompanyCustomer(id)
	}

	var raw uuid.UUID
	if dto.IndividualID != nil {
		raw = *dto.IndividualID
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return order.CustomerRef{}, err
	}
	return order.NewIndividualCustomer(id)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
