package commands

import (
	"errors"
	"fmt"
	"strings"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

// RepairDecision is the customer's verdict on a repair estimate.
type RepairDecision string

const (
	// RepairDecisionApprove accepts the estimate and starts the repair.
	RepairDecisionApprove RepairDecision = "approve"
	// RepairDecisionCancel rejects the estimate; a reason is mandatory.
	RepairDecisionCancel RepairDecision = "cancel"
)

// Validate checks the decision is one of the defined verdicts.
func (d RepairDecision) Validate() error {
	switch d {
	case RepairDecisionApprove, RepairDecisionCancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%q is not a valid repair decision", string(d)))
	}
}

var (
	ErrDecideRepairCommandIsNotConstructed = errors.New(
		"DecideRepairCommand must be created via NewDecideRepairCommand constructor",
	)
)

// DecideRepairCommand represents the customer's decision on the submitted
// repair estimate: approve it, or cancel the repair with a reason.
type DecideRepairCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	caller   actor.Actor
	decision RepairDecision
	reason   string

	guard guard.ConstructorGuard
}

// NewDecideRepairCommand creates a command carrying the estimate decision.
// A cancel decision without a reason is rejected here, before any state is
// touched, so the order stays in the waiting-decision status.
func NewDecideRepairCommand(orderID kernel.UUID, caller actor.Actor,
	decision RepairDecision, reason string) (DecideRepairCommand, error) {
	cmd := DecideRepairCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setDecision(decision, reason),
	); err != nil {
		return DecideRepairCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideRepairCommand) Validate() error {
	return c.guard.Validate(ErrDecideRepairCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DecideRepairCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the acting user.
func (c DecideRepairCommand) Caller() actor.Actor {
	return c.caller
}

// Decision returns the customer's verdict.
func (c DecideRepairCommand) Decision() RepairDecision {
	return c.decision
}

// Reason returns the cancellation reason. Empty for approvals.
func (c DecideRepairCommand) Reason() string {
	return c.reason
}

func (c *DecideRepairCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DecideRepairCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *DecideRepairCommand) setDecision(decision RepairDecision, reason string) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	if decision == RepairDecisionCancel && strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("cancel reason")
	}
	c.decision = decision
	c.reason = reason
	return nil
}
