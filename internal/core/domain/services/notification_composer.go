package services

import (
	"fmt"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
)

// Notification is a single message addressed to one recipient. RecipientID is
// nil for the admin audience, which is delivered as a broadcast.
type Notification struct {
	Role        actor.Role
	RecipientID *kernel.UUID
	Message     string
}

// NotificationComposer turns the domain events recorded on an order into
// recipient-specific Georgian messages. It never mutates the order and never
// fails: an event it cannot address (e.g. a courier recipient on an order
// with no courier assigned) is silently skipped.
//
// Composition runs after the state change is already persisted, so nothing
// here may influence the outcome of the operation that produced the events.
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// Compose renders notifications for every event recorded on the order.
func (c NotificationComposer) Compose(o *order.Order, events []order.DomainEvent) []Notification {
	var notifications []Notification
	for _, e := range events {
		switch event := e.(type) {
		case order.StatusChangedEvent:
			notifications = append(notifications, c.composeStatusChanged(o, event)...)
		case order.ServiceTypeChangedEvent:
			notifications = append(notifications, c.composeServiceTypeChanged(o, event)...)
		case order.StaffAssignedEvent:
			notifications = append(notifications, c.composeStaffAssigned(o, event)...)
		}
	}
	return notifications
}

func (c NotificationComposer) composeStatusChanged(o *order.Order, e order.StatusChangedEvent) []Notification {
	var notifications []Notification
	for _, role := range e.Recipients {
		recipientID, ok := c.resolveRecipient(o, role)
		if !ok {
			continue
		}

		var message string
		switch role {
		case actor.RoleCustomer:
			message = fmt.Sprintf("თქვენი შეკვეთის (%s %s) სტატუსი შეიცვალა: %s",
				o.Brand(), o.Model(), e.To.Label())
		case actor.RoleAdmin:
			message = fmt.Sprintf("შეკვეთა %s გადავიდა სტატუსში: %s", o.ID(), e.To.Label())
		default:
			message = fmt.Sprintf("შეკვეთის (%s %s) სტატუსი შეიცვალა: %s",
				o.Brand(), o.Model(), e.To.Label())
		}

		notifications = append(notifications, Notification{
			Role:        role,
			RecipientID: recipientID,
			Message:     message,
		})
	}
	return notifications
}

func (c NotificationComposer) composeServiceTypeChanged(o *order.Order, e order.ServiceTypeChangedEvent) []Notification {
	var notifications []Notification
	for _, role := range e.Recipients {
		recipientID, ok := c.resolveRecipient(o, role)
		if !ok {
			continue
		}

		var message string
		switch role {
		case actor.RoleCustomer:
			message = fmt.Sprintf("თქვენი შეკვეთის მომსახურების ტიპი შეიცვალა: %s", e.To.Label())
		default:
			message = fmt.Sprintf("შეკვეთის %s მომსახურების ტიპი შეიცვალა: %s", o.ID(), e.To.Label())
		}

		notifications = append(notifications, Notification{
			Role:        role,
			RecipientID: recipientID,
			Message:     message,
		})
	}
	return notifications
}

// composeStaffAssigned produces the assignment diff messages: one to the
// admin, one to the previously assigned staff member when the assignment
// replaced somebody, one to the newly assigned staff member, and one to the
// customer with first-assignment or reassignment phrasing.
func (c NotificationComposer) composeStaffAssigned(o *order.Order, e order.StaffAssignedEvent) []Notification {
	roleLabel := "კურიერი"
	if e.Role == actor.RoleTechnician {
		roleLabel = "ტექნიკოსი"
	}

	assigned := e.Assigned
	notifications := []Notification{
		{
			Role: actor.RoleAdmin,
			Message: fmt.Sprintf("შეკვეთას %s დაენიშნა %s %s",
				o.ID(), roleLabel, assigned),
		},
	}

	if e.Previous != nil {
		notifications = append(notifications, Notification{
			Role:        e.Role,
			RecipientID: e.Previous,
			Message:     fmt.Sprintf("შეკვეთა (%s %s) მოხსნილია თქვენი სიიდან", o.Brand(), o.Model()),
		})
	}

	notifications = append(notifications, Notification{
		Role:        e.Role,
		RecipientID: &assigned,
		Message:     fmt.Sprintf("თქვენ დაგენიშნათ ახალი შეკვეთა (%s %s)", o.Brand(), o.Model()),
	})

	customerID := o.Customer().ID()
	customerMessage := fmt.Sprintf("თქვენს შეკვეთას (%s %s) დაენიშნა %s", o.Brand(), o.Model(), roleLabel)
	if e.Previous != nil {
		customerMessage = fmt.Sprintf("თქვენს შეკვეთას (%s %s) შეეცვალა %s", o.Brand(), o.Model(), roleLabel)
	}
	notifications = append(notifications, Notification{
		Role:        actor.RoleCustomer,
		RecipientID: &customerID,
		Message:     customerMessage,
	})

	return notifications
}

// resolveRecipient maps a recipient role to the concrete user on the order.
// Admin resolves to a nil id (broadcast). Staff roles resolve only when the
// corresponding staff member is assigned.
func (c NotificationComposer) resolveRecipient(o *order.Order, role actor.Role) (*kernel.UUID, bool) {
	switch role {
	case actor.RoleAdmin:
		return nil, true
	case actor.RoleCustomer:
		id := o.Customer().ID()
		return &id, true
	case actor.RoleTechnician:
		if o.Technician() == nil {
			return nil, false
		}
		return o.Technician(), true
	case actor.RoleCourier:
		if o.Courier() == nil {
			return nil, false
		}
		return o.Courier(), true
	default:
		return nil, false
	}
}
