package queries

import (
	"context"
	"database/sql"
	"errors"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order view from the database with the
// caller's scope applied in SQL, so an out-of-scope order never leaves the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order views.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the scoped lookup. Returns errs.ObjectNotFoundError both
// for absent orders and for scope misses.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	where, args := scopeClause(query.OrderID(), query.Caller())

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			service_type,
			brand,
			model,
			description,
			category_id,
			address_id,
			technician_id,
			courier_id,
			cancel_reason,
			payment_amount,
			payment_reason,
			version
		FROM orders
		WHERE `+where, args...).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// scopeClause builds the WHERE clause binding the lookup to the caller's
// role: customers match ownership columns, staff match their assignment
// column, admins match by id only.
func scopeClause(orderID kernel.UUID, caller actor.Actor) (string, []any) {
	id := orderID.Bytes()
	callerID := caller.ID().Bytes()

	switch caller.Role() {
	case actor.RoleCustomer:
		return "id = ? AND (company_id = ? OR individual_id = ?)", []any{id, callerID, callerID}
	case actor.RoleCourier:
		return "id = ? AND courier_id = ?", []any{id, callerID}
	case actor.RoleTechnician:
		return "id = ? AND technician_id = ?", []any{id, callerID}
	default:
		return "id = ?", []any{id}
	}
}

func scanOrderRow(row *sql.Row) (GetOrderQueryResponse, error) {
	var (
		id            uuid.UUID
		status        int
		serviceType   int
		brand         string
		model         string
		description   string
		categoryID    uuid.UUID
		addressID     uuid.UUID
		technicianID  *uuid.UUID
		courierID     *uuid.UUID
		cancelReason  string
		paymentAmount *float64
		paymentReason *string
		version       int64
	)

	if err := row.Scan(&id, &status, &serviceType, &brand, &model, &description,
		&categoryID, &addressID, &technicianID, &courierID,
		&cancelReason, &paymentAmount, &paymentReason, &version); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	catID, err := kernel.UUIDFromBytes(categoryID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	addrID, err := kernel.UUIDFromBytes(addressID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:            orderID,
		Status:        order.Status(status).String(),
		StatusLabel:   order.Status(status).Label(),
		ServiceType:   order.ServiceType(serviceType).String(),
		Brand:         brand,
		Model:         model,
		Description:   description,
		CategoryID:    catID,
		AddressID:     addrID,
		CancelReason:  cancelReason,
		PaymentAmount: paymentAmount,
		PaymentReason: paymentReason,
		Version:       version,
	}

	if technicianID != nil {
		tID, tErr := kernel.UUIDFromBytes((*technicianID)[:])
		if tErr != nil {
			return GetOrderQueryResponse{}, tErr
		}
		resp.TechnicianID = &tID
	}
	if courierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*courierID)[:])
		if cErr != nil {
			return GetOrderQueryResponse{}, cErr
		}
		resp.CourierID = &cID
	}

	return resp, nil
}
