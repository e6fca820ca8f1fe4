package commands

import (
	"errors"
	"fmt"

	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

var (
	ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
		"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
	)
)

// DispatchNotificationsCommand represents one drain cycle of the
// notification outbox.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a drain command with a positive
// batch limit.
func NewDispatchNotificationsCommand(limit int) (DispatchNotificationsCommand, error) {
	cmd := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLimit(limit); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// Limit returns the maximum number of envelopes delivered per cycle.
func (c DispatchNotificationsCommand) Limit() int {
	return c.limit
}

func (c *DispatchNotificationsCommand) setLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is not greater than 0", limit))
	}
	c.limit = limit
	return nil
}
