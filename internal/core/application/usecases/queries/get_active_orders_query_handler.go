package queries

import (
	"context"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists all orders outside the terminal statuses.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active orders
// listing.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by order ID for consistent
// output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE status NOT IN (?, ?, ?, ?)
		ORDER BY id
	`, int(order.StatusCompleted), int(order.StatusCancelled),
		int(order.StatusCompletedOnSiteInstalling), int(order.StatusCompletedOnSiteRepairing)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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

		if err = rows.Scan(&id, &status, &serviceType, &brand, &model, &description,
			&categoryID, &addressID, &technicianID, &courierID,
			&cancelReason, &paymentAmount, &paymentReason, &version); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		catID, catErr := kernel.UUIDFromBytes(categoryID[:])
		if catErr != nil {
			return nil, catErr
		}
		addrID, addrErr := kernel.UUIDFromBytes(addressID[:])
		if addrErr != nil {
			return nil, addrErr
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
				return nil, tErr
			}
			resp.TechnicianID = &tID
		}
		if courierID != nil {
			cID, cErr := kernel.UUIDFromBytes((*courierID)[:])
			if cErr != nil {
				return nil, cErr
			}
			resp.CourierID = &cID
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
