package order

import (
	"fmt"

	"remont/internal/core/domain/model/actor"
	"remont/internal/pkg/errs"
)

// Action names a single lifecycle operation. Every action is bound to exactly
// one actor role and one entry of the transition table.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionStartPickup - courier sets out to collect an off-site repair item.
	ActionStartPickup
	// ActionPickedUp - courier confirms holding the item.
	ActionPickedUp
	// ActionToTechnician - customer releases the item to the workshop.
	ActionToTechnician
	// ActionDeliveredToTechnician - courier hands the item to the technician.
	ActionDeliveredToTechnician
	// ActionInspection - technician starts diagnostics.
	ActionInspection
	// ActionWaitingDecision - technician submits the estimate for approval.
	ActionWaitingDecision
	// ActionApproveRepair - customer approves the estimate.
	ActionApproveRepair
	// ActionCancelRepair - customer rejects the estimate with a reason.
	ActionCancelRepair
	// ActionBrokenReady - technician readies the unrepaired item for return.
	ActionBrokenReady
	// ActionReturningBroken - courier starts returning the unrepaired item.
	ActionReturningBroken
	// ActionReturnedBroken - courier confirms the unrepaired item handover.
	ActionReturnedBroken
	// ActionCancelled - customer confirms closure of a rejected-estimate order.
	ActionCancelled
	// ActionFixedReady - technician readies the repaired item for return.
	ActionFixedReady
	// ActionReturningFixed - courier starts returning the repaired item.
	ActionReturningFixed
	// ActionReturnedFixed - courier confirms the repaired item handover.
	ActionReturnedFixed
	// ActionCompleted - customer confirms completion of an off-site repair.
	ActionCompleted
	// ActionTechnicianComing - technician sets out to the customer's address.
	ActionTechnicianComing
	// ActionRepairingOnSite - technician starts an on-site repair.
	ActionRepairingOnSite
	// ActionInstalling - technician starts an installation.
	ActionInstalling
	// ActionWaitingPayment - technician submits the on-site bill.
	ActionWaitingPayment
	// ActionCompletedOnSite - customer confirms completion of on-site work.
	ActionCompletedOnSite
)

// transition is one row of the declarative lifecycle table: who may perform
// the action, from which statuses, under which service types, into which
// successor, and which roles are notified about it.
type transition struct {
	name            string
	operation       string
	actor           actor.Role
	from            []Status
	serviceTypes    []ServiceType
	resolve         func(o *Order) Status
	recipients      []actor.Role
	requiresPayment bool
	requiresReason  bool
}

func toStatus(s Status) func(o *Order) Status {
	return func(*Order) Status { return s }
}

// getTransitionTable returns the full lifecycle table. The guard algorithm in
// Order.apply consults it and nothing else: an action not in this table, or
// requested from a status outside its from-set, cannot mutate an order.
func getTransitionTable() map[Action]transition {
	anyType := []ServiceType(nil)
	offSite := []ServiceType{ServiceTypeFixOffSite}
	onSiteWork := []ServiceType{ServiceTypeFixOnSite, ServiceTypeInstallation}

	return map[Action]transition{
		ActionStartPickup: {
			name: "start pickup", operation: "startPickup",
			actor: actor.RoleCourier,
			from:  []Status{StatusAssigned}, serviceTypes: offSite,
			resolve:    toStatus(StatusPickupStarted),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier},
		},
		ActionPickedUp: {
			name: "mark picked up", operation: "pickedUp",
			actor: actor.RoleCourier,
			from:  []Status{StatusPickupStarted}, serviceTypes: anyType,
			resolve:    toStatus(StatusPickedUp),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier},
		},
		ActionToTechnician: {
			name: "send to technician", operation: "toTechnician",
			actor: actor.RoleCustomer,
			from:  []Status{StatusPickedUp}, serviceTypes: anyType,
			resolve:    toStatus(StatusToTechnician),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier},
		},
		ActionDeliveredToTechnician: {
			name: "deliver to technician", operation: "deliveredToTechnician",
			actor: actor.RoleCourier,
			from:  []Status{StatusToTechnician}, serviceTypes: anyType,
			resolve:    toStatus(StatusDeliveredToTechnician),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier, actor.RoleTechnician},
		},
		ActionInspection: {
			name: "start inspection", operation: "inspection",
			actor: actor.RoleTechnician,
			from:  []Status{StatusDeliveredToTechnician}, serviceTypes: anyType,
			resolve:    toStatus(StatusInspection),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
		},
		ActionWaitingDecision: {
			name: "request decision", operation: "waitingDecision",
			actor: actor.RoleTechnician,
			from:  []Status{StatusInspection}, serviceTypes: anyType,
			resolve:         toStatus(StatusWaitingDecision),
			recipients:      []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
			requiresPayment: true,
		},
		ActionApproveRepair: {
			name: "approve repair", operation: "approveRepair",
			actor: actor.RoleCustomer,
			from:  []Status{StatusWaitingDecision}, serviceTypes: anyType,
			resolve:    toStatus(StatusRepairingOffSite),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
		},
		ActionCancelRepair: {
			name: "cancel repair", operation: "cancelRepair",
			actor: actor.RoleCustomer,
			from:  []Status{StatusWaitingDecision}, serviceTypes: anyType,
			resolve:        toStatus(StatusRepairCancelled),
			recipients:     []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
			requiresReason: true,
		},
		ActionBrokenReady: {
			name: "mark broken item ready", operation: "brokenReady",
			actor: actor.RoleTechnician,
			from:  []Status{StatusRepairCancelled}, serviceTypes: anyType,
			resolve:    toStatus(StatusBrokenReady),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician, actor.RoleCourier},
		},
		ActionReturningBroken: {
			name: "start returning broken item", operation: "returningBroken",
			actor: actor.RoleCourier,
			from:  []Status{StatusBrokenReady}, serviceTypes: anyType,
			resolve:    toStatus(StatusReturningBroken),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier},
		},
		ActionReturnedBroken: {
			name: "mark broken item returned", operation: "returnedBroken",
			actor: actor.RoleCourier,
			from:  []Status{StatusReturningBroken}, serviceTypes: anyType,
			resolve:    toStatus(StatusReturnedBroken),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier},
		},
		ActionCancelled: {
			name: "confirm cancellation", operation: "cancelled",
			actor: actor.RoleCustomer,
			from:  []Status{StatusReturnedBroken}, serviceTypes: anyType,
			resolve:    toStatus(StatusCancelled),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer},
		},
		ActionFixedReady: {
			name: "mark fixed item ready", operation: "fixedReady",
			actor: actor.RoleTechnician,
			from:  []Status{StatusRepairingOffSite}, serviceTypes: anyType,
			resolve:    toStatus(StatusFixedReady),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician, actor.RoleCourier},
		},
		ActionReturningFixed: {
			name: "start returning fixed item", operation: "returningFixed",
			actor: actor.RoleCourier,
			from:  []Status{StatusFixedReady}, serviceTypes: anyType,
			resolve:    toStatus(StatusReturningFixed),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier},
		},
		ActionReturnedFixed: {
			name: "mark fixed item returned", operation: "returnedFixed",
			actor: actor.RoleCourier,
			from:  []Status{StatusReturningFixed}, serviceTypes: anyType,
			resolve:    toStatus(StatusReturnedFixed),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleCourier},
		},
		ActionCompleted: {
			name: "complete order", operation: "completed",
			actor: actor.RoleCustomer,
			from:  []Status{StatusReturnedFixed}, serviceTypes: anyType,
			resolve:    toStatus(StatusCompleted),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer},
		},
		ActionTechnicianComing: {
			name: "mark technician coming", operation: "technicianComing",
			actor: actor.RoleTechnician,
			from:  []Status{StatusAssigned}, serviceTypes: onSiteWork,
			resolve:    toStatus(StatusTechnicianComing),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
		},
		ActionRepairingOnSite: {
			name: "start on-site repair", operation: "repairingOnSite",
			actor: actor.RoleTechnician,
			from:  []Status{StatusTechnicianComing}, serviceTypes: []ServiceType{ServiceTypeFixOnSite},
			resolve:    toStatus(StatusRepairingOnSite),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
		},
		ActionInstalling: {
			name: "start installation", operation: "installing",
			actor: actor.RoleTechnician,
			from:  []Status{StatusTechnicianComing}, serviceTypes: []ServiceType{ServiceTypeInstallation},
			resolve:    toStatus(StatusInstalling),
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
		},
		ActionWaitingPayment: {
			name: "request payment", operation: "waitingPayment",
			actor: actor.RoleTechnician,
			from:  []Status{StatusRepairingOnSite, StatusInstalling}, serviceTypes: anyType,
			resolve:         toStatus(StatusWaitingPayment),
			recipients:      []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
			requiresPayment: true,
		},
		ActionCompletedOnSite: {
			name: "complete on-site order", operation: "completedOnSite",
			actor: actor.RoleCustomer,
			from:  []Status{StatusWaitingPayment}, serviceTypes: anyType,
			resolve: func(o *Order) Status {
				if o.serviceType == ServiceTypeInstallation {
					return StatusCompletedOnSiteInstalling
				}
				return StatusCompletedOnSiteRepairing
			},
			recipients: []actor.Role{actor.RoleAdmin, actor.RoleCustomer, actor.RoleTechnician},
		},
	}
}

// ActionFromString parses an operation name (e.g. "startPickup") into its Action.
func ActionFromString(s string) (Action, error) {
	for a, tr := range getTransitionTable() {
		if tr.operation == s {
			return a, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a valid lifecycle operation", s))
}

// AllActions returns every defined action. Primarily useful for exhaustive
// table-driven tests.
func AllActions() []Action {
	actions := make([]Action, 0, len(getTransitionTable()))
	for a := range getTransitionTable() {
		actions = append(actions, a)
	}
	return actions
}

// Validate checks if the action is one of the defined lifecycle operations.
func (a Action) Validate() error {
	if _, ok := getTransitionTable()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid lifecycle operation", int(a)))
	}
	return nil
}

// String returns the human-readable action name used in guard errors.
func (a Action) String() string {
	if tr, ok := getTransitionTable()[a]; ok {
		return tr.name
	}
	return "unknown action"
}

// OperationName returns the wire name of the operation (e.g. "startPickup").
func (a Action) OperationName() string {
	if tr, ok := getTransitionTable()[a]; ok {
		return tr.operation
	}
	return "unknown"
}

// ActorRole returns the single role allowed to perform the action.
func (a Action) ActorRole() actor.Role {
	return getTransitionTable()[a].actor
}

// AllowedFrom returns the statuses the action may be performed from.
func (a Action) AllowedFrom() []Status {
	tr := getTransitionTable()[a]
	from := make([]Status, len(tr.from))
	copy(from, tr.from)
	return from
}

// RequiresPayment reports whether the action must carry a Payment payload.
func (a Action) RequiresPayment() bool {
	return getTransitionTable()[a].requiresPayment
}

// RequiresReason reports whether the action must carry a cancellation reason.
func (a Action) RequiresReason() bool {
	return getTransitionTable()[a].requiresReason
}
