package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/guard"
)

var ErrCancelUnpaidOrdersCommandIsNotConstructed = errors.New(
	"CancelUnpaidOrdersCommand must be created via NewCancelUnpaidOrdersCommand constructor",
)

// CancelUnpaidOrdersCommand cancels every order that has waited for payment
// longer than timeout as of now.
type CancelUnpaidOrdersCommand struct {
	now     time.Time
	timeout time.Duration

	guard guard.ConstructorGuard
}

func NewCancelUnpaidOrdersCommand(now time.Time, timeout time.Duration) (CancelUnpaidOrdersCommand, error) {
	if err := validateSweep(now, timeout); err != nil {
		return CancelUnpaidOrdersCommand{}, err
	}
	return CancelUnpaidOrdersCommand{now: now, timeout: timeout, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelUnpaidOrdersCommandIsNotConstructed)
}

func (c CancelUnpaidOrdersCommand) Now() time.Time {
	return c.now
}

func (c CancelUnpaidOrdersCommand) Deadline() time.Time {
	return c.now.Add(-c.timeout)
}
