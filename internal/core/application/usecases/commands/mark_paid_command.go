package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrMarkPaidCommandIsNotConstructed = errors.New(
	"MarkPaidCommand must be created via NewMarkPaidCommand constructor",
)

// MarkPaidCommand reports a successful payment for the order with the number.
type MarkPaidCommand struct {
	number string

	guard guard.ConstructorGuard
}

func NewMarkPaidCommand(number string) (MarkPaidCommand, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return MarkPaidCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}
	return MarkPaidCommand{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaidCommandIsNotConstructed)
}

func (c MarkPaidCommand) Number() string {
	return c.number
}
