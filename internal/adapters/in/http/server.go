package http

import (
	"errors"
	"net/http"

	"remont/internal/core/application/usecases/commands"
	"remont/internal/core/application/usecases/queries"
	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/generated/servers"
	"remont/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Caller identity headers. The upstream gateway authenticates users and
// forwards who they are; this service only scopes data access by them.
const (
	headerCallerID     = "X-Caller-Id"
	headerCallerRole   = "X-Caller-Role"
	headerCustomerKind = "X-Customer-Kind"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	updateOrderHandler      commands.UpdateOrderCommandHandler
	transitionOrderHandler  commands.TransitionOrderCommandHandler
	requestPaymentHandler   commands.RequestPaymentCommandHandler
	decideRepairHandler     commands.DecideRepairCommandHandler
	updateAdminOrderHandler commands.UpdateAdminOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	requestPaymentHandler commands.RequestPaymentCommandHandler,
	decideRepairHandler commands.DecideRepairCommandHandler,
	updateAdminOrderHandler commands.UpdateAdminOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		transitionOrderHandler:  transitionOrderHandler,
		requestPaymentHandler:   requestPaymentHandler,
		decideRepairHandler:     decideRepairHandler,
		updateAdminOrderHandler: updateAdminOrderHandler,
		getOrderHandler:         getOrderHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - customer files a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	customer, err := customerFromRequest(ctx, caller)
	if err != nil {
		return badRequest(ctx, err)
	}

	serviceType, err := order.ServiceTypeFromString(string(body.ServiceType))
	if err != nil {
		return badRequest(ctx, err)
	}
	categoryID, err := kernel.UUIDFromBytes(body.CategoryId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	addressID, err := kernel.UUIDFromBytes(body.AddressId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customer, serviceType,
		body.Brand, body.Model, body.Description, categoryID, addressID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId} - order view scoped to the caller.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, caller)
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - customer self-service
// edit of a pending order.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.UpdateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	categoryID, err := optionalUUID(body.CategoryId)
	if err != nil {
		return badRequest(ctx, err)
	}
	addressID, err := optionalUUID(body.AddressId)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, caller,
		body.Brand, body.Model, body.Description, categoryID, addressID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions - applies
// one named lifecycle operation on behalf of the caller.
func (s *Server) TransitionOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.TransitionOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	action, err := order.ActionFromString(body.Operation)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, action, caller)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestPayment handles POST /api/v1/orders/{orderId}/payment-request -
// technician attaches an estimate (off-site) or a bill (on-site).
func (s *Server) RequestPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.RequestPaymentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	action, err := order.ActionFromString(string(body.Action))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestPaymentCommand(orderID, action, caller,
		body.Amount, body.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.requestPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DecideRepair handles POST /api/v1/orders/{orderId}/decision - customer
// approves or cancels a repair estimate.
func (s *Server) DecideRepair(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.DecideRepairJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	reason := ""
	if body.Reason != nil {
		reason = *body.Reason
	}

	cmd, err := commands.NewDecideRepairCommand(orderID, caller,
		commands.RepairDecision(body.Decision), reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.decideRepairHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/admin/orders - admin listing of all
// orders outside the terminal statuses.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	if caller.Role() != actor.RoleAdmin {
		return errorResponse(ctx, errs.NewObjectNotFoundError("orders", caller.ID()))
	}

	query := queries.NewGetActiveOrdersQuery()

	views, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrderView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateAdminOrder handles PATCH /api/v1/admin/orders/{orderId} - audited
// administrative override of status, service type or assignments.
func (s *Server) UpdateAdminOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.UpdateAdminOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	var status *order.Status
	if body.Status != nil {
		parsed, parseErr := order.StatusFromString(*body.Status)
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		status = &parsed
	}
	var serviceType *order.ServiceType
	if body.ServiceType != nil {
		parsed, parseErr := order.ServiceTypeFromString(string(*body.ServiceType))
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		serviceType = &parsed
	}
	technicianID, err := optionalUUID(body.TechnicianId)
	if err != nil {
		return badRequest(ctx, err)
	}
	courierID, err := optionalUUID(body.CourierId)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateAdminOrderCommand(orderID, caller,
		status, serviceType, technicianID, courierID, body.Justification)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.updateAdminOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// callerFromRequest builds the acting user from the identity headers.
func callerFromRequest(ctx echo.Context) (actor.Actor, error) {
	role, err := actor.RoleFromString(ctx.Request().Header.Get(headerCallerRole))
	if err != nil {
		return actor.Actor{}, err
	}

	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerCallerID))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("caller id", err)
	}

	return actor.NewActor(role, id)
}

// customerFromRequest resolves the customer reference for order creation.
// Only customers may file orders; the account kind defaults to individual
// unless the gateway marks the caller as a company account.
func customerFromRequest(ctx echo.Context, caller actor.Actor) (order.CustomerRef, error) {
	if caller.Role() != actor.RoleCustomer {
		return order.CustomerRef{}, errs.NewValueIsInvalidError("caller role")
	}

	if ctx.Request().Header.Get(headerCustomerKind) == "company" {
		return order.NewCompanyCustomer(caller.ID())
	}
	return order.NewIndividualCustomer(caller.ID())
}

// toOrderView maps the read-side order response onto the wire schema.
func toOrderView(view queries.GetOrderQueryResponse) servers.Order {
	result := servers.Order{
		Id:            view.ID.Bytes(),
		Status:        view.Status,
		StatusLabel:   view.StatusLabel,
		ServiceType:   view.ServiceType,
		Brand:         view.Brand,
		Model:         view.Model,
		Description:   view.Description,
		CategoryId:    view.CategoryID.Bytes(),
		AddressId:     view.AddressID.Bytes(),
		PaymentAmount: view.PaymentAmount,
		PaymentReason: view.PaymentReason,
		Version:       view.Version,
	}

	if view.CancelReason != "" {
		reason := view.CancelReason
		result.CancelReason = &reason
	}
	if view.TechnicianID != nil {
		id := view.TechnicianID.Bytes()
		result.TechnicianId = &id
	}
	if view.CourierID != nil {
		id := view.CourierID.Bytes()
		result.CourierId = &id
	}

	return result
}

func optionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// errorResponse translates the application error taxonomy into HTTP statuses.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrStatusNotChanged),
		errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	})
}
