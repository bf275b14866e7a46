package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/guard"
)

var ErrCompleteStuckDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteStuckDeliveriesCommand must be created via NewCompleteStuckDeliveriesCommand constructor",
)

// CompleteStuckDeliveriesCommand force-completes every order that has been
// out for delivery since before now minus timeout.
type CompleteStuckDeliveriesCommand struct {
	now     time.Time
	timeout time.Duration

	guard guard.ConstructorGuard
}

func NewCompleteStuckDeliveriesCommand(now time.Time, timeout time.Duration) (CompleteStuckDeliveriesCommand, error) {
	if err := validateSweep(now, timeout); err != nil {
		return CompleteStuckDeliveriesCommand{}, err
	}
	return CompleteStuckDeliveriesCommand{now: now, timeout: timeout, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteStuckDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStuckDeliveriesCommandIsNotConstructed)
}

func (c CompleteStuckDeliveriesCommand) Now() time.Time {
	return c.now
}

func (c CompleteStuckDeliveriesCommand) Deadline() time.Time {
	return c.now.Add(-c.timeout)
}
