package order

import (
	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
)

// DomainEvent is a fact recorded by the Order aggregate during a mutation.
// Events are drained after the mutation is persisted and turned into
// notifications by the NotificationComposer; they never influence the
// transition itself.
type DomainEvent interface {
	EventName() string
}

// StatusChangedEvent records a status transition together with the roles
// that must be notified about it.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	Recipients []actor.Role
}

// EventName implements DomainEvent.
func (StatusChangedEvent) EventName() string {
	return "order.status_changed"
}

// ServiceTypeChangedEvent records an administrative service-type correction.
type ServiceTypeChangedEvent struct {
	OrderID    kernel.UUID
	From       ServiceType
	To         ServiceType
	Recipients []actor.Role
}

// EventName implements DomainEvent.
func (ServiceTypeChangedEvent) EventName() string {
	return "order.service_type_changed"
}

// StaffAssignedEvent records a technician or courier (re)assignment.
// Previous is nil on first assignment.
type StaffAssignedEvent struct {
	OrderID  kernel.UUID
	Role     actor.Role
	Previous *kernel.UUID
	Assigned kernel.UUID
}

// EventName implements DomainEvent.
func (StaffAssignedEvent) EventName() string {
	return "order.staff_assigned"
}
