// Package order provides the Order aggregate root and the lifecycle state
// machine of the repair service.
//
// The package includes:
//   - Order: The aggregate root holding device info, customer reference,
//     staff assignments, side-channel fields and the lifecycle status
//   - Status: The set of lifecycle states with display labels
//   - Action: The named lifecycle operations, bound to a declarative
//     transition table (actor role, allowed predecessors, successor,
//     service-type guards, notification recipients)
//   - CustomerRef: A tagged union over the two customer account kinds
//   - Payment: The amount/reason pair attached by payment-requesting actions
//
// Key business rules:
//   - Status moves only along the edges of the transition table; a failed
//     guard leaves the aggregate untouched
//   - Off-site repair inserts pickup/return logistics stages; on-site repair
//     and installation share the technician-coming branch
//   - cancel_reason is set only when a repair decision rejects the estimate;
//     payment amount/reason only by waitingDecision/waitingPayment
//   - Brand, model, description, category and address are editable only
//     while the order is Pending
//   - Administrative overrides (free-form status set, staff reassignment,
//     service-type correction) bypass the table through dedicated methods
//
// State changes record domain events; notification fan-out is composed from
// those events outside the aggregate, so a delivery failure can never corrupt
// a committed transition.
package order
