package order

import (
	"fmt"

	"remont/internal/pkg/errs"
)

// Status represents the lifecycle state of a repair/installation order.
//
// Pending and Assigned are entered outside the named lifecycle operations
// (order creation and the administrative override respectively). Every other
// state is reachable only through the transition table in transitions.go.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created order.
	StatusPending
	// StatusAssigned indicates dispatch accepted the order and assigned staff.
	StatusAssigned

	// Off-site repair branch: pickup, workshop, decision, return legs.

	// StatusPickupStarted indicates the courier set out to collect the item.
	StatusPickupStarted
	// StatusPickedUp indicates the courier holds the item.
	StatusPickedUp
	// StatusToTechnician indicates the customer released the item to the workshop.
	StatusToTechnician
	// StatusDeliveredToTechnician indicates the item reached the technician.
	StatusDeliveredToTechnician
	// StatusInspection indicates diagnostics are in progress.
	StatusInspection
	// StatusWaitingDecision indicates the customer must approve or reject the estimate.
	StatusWaitingDecision
	// StatusRepairingOffSite indicates the approved workshop repair is underway.
	StatusRepairingOffSite
	// StatusRepairCancelled indicates the customer rejected the estimate.
	StatusRepairCancelled
	// StatusBrokenReady indicates the unrepaired item awaits return transport.
	StatusBrokenReady
	// StatusReturningBroken indicates the unrepaired item is on its way back.
	StatusReturningBroken
	// StatusReturnedBroken indicates the unrepaired item was handed back.
	StatusReturnedBroken
	// StatusCancelled is the terminal state of a rejected-estimate order.
	StatusCancelled
	// StatusFixedReady indicates the repaired item awaits return transport.
	StatusFixedReady
	// StatusReturningFixed indicates the repaired item is on its way back.
	StatusReturningFixed
	// StatusReturnedFixed indicates the repaired item was handed back.
	StatusReturnedFixed
	// StatusCompleted is the terminal state of a successful off-site repair.
	StatusCompleted

	// On-site branch: shared by on-site repair and installation.

	// StatusTechnicianComing indicates the technician set out to the address.
	StatusTechnicianComing
	// StatusRepairingOnSite indicates the on-site repair is underway.
	StatusRepairingOnSite
	// StatusInstalling indicates the installation is underway.
	StatusInstalling
	// StatusWaitingPayment indicates the customer must settle the bill.
	StatusWaitingPayment
	// StatusCompletedOnSiteInstalling is the terminal state of an installation.
	StatusCompletedOnSiteInstalling
	// StatusCompletedOnSiteRepairing is the terminal state of an on-site repair.
	StatusCompletedOnSiteRepairing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:                   "Unknown",
		StatusPending:                   "Pending",
		StatusAssigned:                  "Assigned",
		StatusPickupStarted:             "PickupStarted",
		StatusPickedUp:                  "PickedUp",
		StatusToTechnician:              "ToTechnician",
		StatusDeliveredToTechnician:     "DeliveredToTechnician",
		StatusInspection:                "Inspection",
		StatusWaitingDecision:           "WaitingDecision",
		StatusRepairingOffSite:          "RepairingOffSite",
		StatusRepairCancelled:           "RepairCancelled",
		StatusBrokenReady:               "BrokenReady",
		StatusReturningBroken:           "ReturningBroken",
		StatusReturnedBroken:            "ReturnedBroken",
		StatusCancelled:                 "Cancelled",
		StatusFixedReady:                "FixedReady",
		StatusReturningFixed:            "ReturningFixed",
		StatusReturnedFixed:             "ReturnedFixed",
		StatusCompleted:                 "Completed",
		StatusTechnicianComing:          "TechnicianComing",
		StatusRepairingOnSite:           "RepairingOnSite",
		StatusInstalling:                "Installing",
		StatusWaitingPayment:            "WaitingPayment",
		StatusCompletedOnSiteInstalling: "CompletedOnSiteInstalling",
		StatusCompletedOnSiteRepairing:  "CompletedOnSiteRepairing",
	}
}

// getStatusLabels returns the Georgian display labels used when composing
// customer-facing notifications.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		StatusPending:                   "განხილვის მოლოდინში",
		StatusAssigned:                  "მიღებულია",
		StatusPickupStarted:             "კურიერი გზაშია",
		StatusPickedUp:                  "ნივთი აღებულია",
		StatusToTechnician:              "ნივთი იგზავნება ხელოსანთან",
		StatusDeliveredToTechnician:     "ნივთი ჩაბარდა ხელოსანს",
		StatusInspection:                "მიმდინარეობს დიაგნოსტიკა",
		StatusWaitingDecision:           "ელოდება თქვენს გადაწყვეტილებას",
		StatusRepairingOffSite:          "მიმდინარეობს შეკეთება",
		StatusRepairCancelled:           "შეკეთება გაუქმებულია",
		StatusBrokenReady:               "ნივთი მზადაა დასაბრუნებლად",
		StatusReturningBroken:           "ნივთი ბრუნდება",
		StatusReturnedBroken:            "ნივთი დაბრუნებულია",
		StatusCancelled:                 "გაუქმებულია",
		StatusFixedReady:                "შეკეთებული ნივთი მზადაა",
		StatusReturningFixed:            "შეკეთებული ნივთი ბრუნდება",
		StatusReturnedFixed:             "შეკეთებული ნივთი დაბრუნებულია",
		StatusCompleted:                 "დასრულებულია",
		StatusTechnicianComing:          "ხელოსანი გზაშია",
		StatusRepairingOnSite:           "მიმდინარეობს შეკეთება ადგილზე",
		StatusInstalling:                "მიმდინარეობს მონტაჟი",
		StatusWaitingPayment:            "ელოდება გადახდას",
		StatusCompletedOnSiteInstalling: "მონტაჟი დასრულებულია",
		StatusCompletedOnSiteRepairing:  "ადგილზე შეკეთება დასრულებულია",
	}
}

// StatusFromString parses a canonical status name (e.g. "PickupStarted").
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// AllStatuses returns every defined lifecycle status in declaration order.
func AllStatuses() []Status {
	statuses := make([]Status, 0, len(getStatusStrings()))
	for s := StatusPending; ; s++ {
		if _, ok := getStatusStrings()[s]; !ok {
			break
		}
		statuses = append(statuses, s)
	}
	return statuses
}

// Validate checks if the Status value is one of the defined lifecycle states.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the canonical name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the Georgian display label of the status, used by
// notification composition. Invalid statuses fall back to the canonical name.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return s.String()
}

// IsTerminal reports whether no further lifecycle transition is defined
// from this status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusCompletedOnSiteInstalling, StatusCompletedOnSiteRepairing:
		return true
	default:
		return false
	}
}
