package order

import (
	"errors"
	"fmt"
	"strings"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

// MaxCancelReasonLength limits the free-text reason attached to a rejected
// repair estimate.
const MaxCancelReasonLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = guard.ErrDefaultConstructorGuard
)

// Order is the aggregate root of a repair or installation request. It owns the
// full lifecycle state machine and is the only place status may change.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer, category and address
//   - Status changes only through the transition table, the estimate/payment
//     methods, or the administrative override
//   - Every successful state change records a domain event describing who
//     must be notified
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	customer    CustomerRef
	serviceType ServiceType
	status      Status

	brand       string
	model       string
	description string

	categoryID kernel.UUID
	addressID  kernel.UUID

	// technicianID and courierID are nil until an admin assigns staff.
	technicianID *kernel.UUID
	courierID    *kernel.UUID

	// cancelReason is set once, when the customer rejects the estimate.
	cancelReason string

	// payment holds the latest submitted estimate or bill. It is retained
	// after the order reaches a terminal state for audit purposes.
	payment *Payment

	// version supports optimistic concurrency control in the repository.
	version int64

	events []DomainEvent

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the Pending status with version 1.
//
// Parameters:
//   - id: unique identifier for the order
//   - customer: owning customer (company or individual)
//   - serviceType: installation, on-site repair or off-site repair
//   - brand, model, description: free-text device info
//   - categoryID: service category reference
//   - addressID: service address reference
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, customer CustomerRef, serviceType ServiceType,
	brand, model, description string, categoryID, addressID kernel.UUID) (*Order, error) {
	order := &Order{
		status:  StatusPending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setServiceType(serviceType),
		order.setDetails(brand, model, description),
		order.setCategoryID(categoryID),
		order.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an Order from persisted state. It performs the same
// field validation as NewOrder but accepts an arbitrary status, staff
// assignments, side-channel fields and version.
func RestoreOrder(id kernel.UUID, customer CustomerRef, serviceType ServiceType, status Status,
	brand, model, description string, categoryID, addressID kernel.UUID,
	technicianID, courierID *kernel.UUID, cancelReason string, payment *Payment,
	version int64) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setServiceType(serviceType),
		order.setStatus(status),
		order.setDetails(brand, model, description),
		order.setCategoryID(categoryID),
		order.setAddressID(addressID),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if technicianID != nil {
		if err := technicianID.Validate(); err != nil {
			return nil, err
		}
		order.technicianID = technicianID
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		order.courierID = courierID
	}
	if payment != nil {
		if err := payment.Validate(); err != nil {
			return nil, err
		}
		order.payment = payment
	}
	order.cancelReason = cancelReason

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the owning customer reference.
func (o *Order) Customer() CustomerRef {
	return o.customer
}

// ServiceType returns the order's service type.
func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Brand returns the device brand.
func (o *Order) Brand() string {
	return o.brand
}

// Model returns the device model.
func (o *Order) Model() string {
	return o.model
}

// Description returns the device problem description.
func (o *Order) Description() string {
	return o.description
}

// CategoryID returns the service category reference.
func (o *Order) CategoryID() kernel.UUID {
	return o.categoryID
}

// AddressID returns the service address reference.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Technician returns the assigned technician's ID, or nil if unassigned.
func (o *Order) Technician() *kernel.UUID {
	return o.technicianID
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CancelReason returns the customer's reason for rejecting the estimate.
// Empty unless the order passed through an estimate rejection.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// Payment returns the latest submitted estimate or bill, or nil.
func (o *Order) Payment() *Payment {
	return o.payment
}

// Version returns the optimistic concurrency version of the aggregate.
func (o *Order) Version() int64 {
	return o.version
}

// Events returns the domain events recorded since the aggregate was loaded.
func (o *Order) Events() []DomainEvent {
	return o.events
}

// ClearEvents discards recorded domain events. Called after they are handed
// to the notification composer.
func (o *Order) ClearEvents() {
	o.events = nil
}

// IsOwnedBy reports whether the given customer id owns this order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customer.IsOwnedBy(customerID)
}

// Apply performs a payload-free lifecycle action. Actions that carry an
// estimate or a rejection reason must go through RequestDecision,
// RequestPayment or RejectRepair instead.
func (o *Order) Apply(a Action) error {
	if a.RequiresPayment() {
		return errs.NewValueIsRequiredError("payment")
	}
	if a.RequiresReason() {
		return errs.NewValueIsRequiredError("cancel reason")
	}
	return o.apply(a, nil, "")
}

// RequestDecision submits the technician's repair estimate, moving the order
// to the waiting-decision status.
func (o *Order) RequestDecision(p Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return o.apply(ActionWaitingDecision, &p, "")
}

// RequestPayment submits the technician's on-site bill, moving the order to
// the waiting-payment status.
func (o *Order) RequestPayment(p Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return o.apply(ActionWaitingPayment, &p, "")
}

// ApproveRepair records the customer's approval of the estimate, moving the
// order into off-site repair.
func (o *Order) ApproveRepair() error {
	return o.apply(ActionApproveRepair, nil, "")
}

// RejectRepair records the customer's rejection of the estimate together with
// a mandatory reason, cancelling the repair.
func (o *Order) RejectRepair(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("cancel reason")
	}
	if len(reason) > MaxCancelReasonLength {
		return errs.NewValueIsOutOfRangeError("cancel reason length", len(reason), 1, MaxCancelReasonLength)
	}
	return o.apply(ActionCancelRepair, nil, reason)
}

// apply runs the transition guard and, on success, mutates the order and
// records a status-changed event. The service type guard runs before the
// status guard, so an action foreign to the order's service type fails the
// same way regardless of the current status.
func (o *Order) apply(a Action, p *Payment, reason string) error {
	tr, ok := getTransitionTable()[a]
	if !ok {
		return a.Validate()
	}

	if tr.serviceTypes != nil && !containsServiceType(tr.serviceTypes, o.serviceType) {
		return errs.NewInvalidTransitionErrorWithCause(tr.name, o.status.String(),
			fmt.Errorf("service type is %s", o.serviceType))
	}

	if !containsStatus(tr.from, o.status) {
		return errs.NewInvalidTransitionError(tr.name, o.status.String())
	}

	from := o.status
	o.status = tr.resolve(o)
	if p != nil {
		o.payment = p
	}
	if reason != "" {
		o.cancelReason = reason
	}

	o.recordEvent(StatusChangedEvent{
		OrderID:    o.id,
		From:       from,
		To:         o.status,
		Recipients: tr.recipients,
	})

	return nil
}

// UpdateDetails changes the device info. Permitted only while the order is
// still pending.
func (o *Order) UpdateDetails(brand, model, description string) error {
	if o.status != StatusPending {
		return errs.NewInvalidTransitionError("update order", o.status.String())
	}
	return o.setDetails(brand, model, description)
}

// ChangeCategory changes the service category. Permitted only while pending.
func (o *Order) ChangeCategory(categoryID kernel.UUID) error {
	if o.status != StatusPending {
		return errs.NewInvalidTransitionError("update order", o.status.String())
	}
	return o.setCategoryID(categoryID)
}

// ChangeAddress changes the service address. Permitted only while pending.
// The caller must re-validate branch coverage before invoking this.
func (o *Order) ChangeAddress(addressID kernel.UUID) error {
	if o.status != StatusPending {
		return errs.NewInvalidTransitionError("update order", o.status.String())
	}
	return o.setAddressID(addressID)
}

// AssignTechnician assigns or reassigns the technician. Assignment never
// changes the status. A staff-assigned event is recorded only when the
// technician actually changes.
func (o *Order) AssignTechnician(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	if o.technicianID != nil && o.technicianID.IsEqual(technicianID) {
		return nil
	}

	previous := o.technicianID
	o.technicianID = &technicianID
	o.recordEvent(StaffAssignedEvent{
		OrderID:  o.id,
		Role:     actor.RoleTechnician,
		Previous: previous,
		Assigned: technicianID,
	})
	return nil
}

// AssignCourier assigns or reassigns the courier. Assignment never changes
// the status.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil && o.courierID.IsEqual(courierID) {
		return nil
	}

	previous := o.courierID
	o.courierID = &courierID
	o.recordEvent(StaffAssignedEvent{
		OrderID:  o.id,
		Role:     actor.RoleCourier,
		Previous: previous,
		Assigned: courierID,
	})
	return nil
}

// OverrideStatus sets the status directly, bypassing the transition table.
// This is the administrative correction path: it is the only way an order
// enters the Assigned status. Setting the current status again is rejected
// with ErrStatusNotChanged. The caller supplies the recipient roles since
// the appropriate audience depends on which staff was engaged before the
// override.
func (o *Order) OverrideStatus(status Status, recipients []actor.Role) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if o.status == status {
		return errs.ErrStatusNotChanged
	}

	from := o.status
	o.status = status
	o.recordEvent(StatusChangedEvent{
		OrderID:    o.id,
		From:       from,
		To:         o.status,
		Recipients: recipients,
	})
	return nil
}

// ChangeServiceType switches the order between installation and repair flows.
// Administrative path only.
func (o *Order) ChangeServiceType(serviceType ServiceType, recipients []actor.Role) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	if o.serviceType == serviceType {
		return nil
	}

	from := o.serviceType
	o.serviceType = serviceType
	o.recordEvent(ServiceTypeChangedEvent{
		OrderID:    o.id,
		From:       from,
		To:         o.serviceType,
		Recipients: recipients,
	})
	return nil
}

func (o *Order) recordEvent(e DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer CustomerRef) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDetails(brand, model, description string) error {
	if strings.TrimSpace(brand) == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	if strings.TrimSpace(model) == "" {
		return errs.NewValueIsRequiredError("model")
	}
	o.brand = brand
	o.model = model
	o.description = description
	return nil
}

func (o *Order) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("category", err)
	}
	o.categoryID = categoryID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("address", err)
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}

func containsStatus(set []Status, s Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsServiceType(set []ServiceType, t ServiceType) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}
