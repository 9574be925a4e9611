package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrSetOffloadOrderCommandIsNotConstructed = errors.New(
		"SetOffloadOrderCommand must be created via NewSetOffloadOrderCommand constructor",
	)
	ErrOffloadOrderIsRequired = errs.NewValueIsRequiredError("order")
)

// SetOffloadOrderCommand represents a request to switch the global offload policy.
// Whether the value is a known policy is decided by the logistics manager.
type SetOffloadOrderCommand struct { //nolint:recvcheck //using for validation
	order string

	guard guard.ConstructorGuard
}

func NewSetOffloadOrderCommand(order string) (SetOffloadOrderCommand, error) {
	order = strings.TrimSpace(order)
	if order == "" {
		return SetOffloadOrderCommand{}, ErrOffloadOrderIsRequired
	}

	return SetOffloadOrderCommand{
		order: order,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SetOffloadOrderCommand) Validate() error {
	return c.guard.Validate(ErrSetOffloadOrderCommandIsNotConstructed)
}

func (c SetOffloadOrderCommand) Order() string {
	return c.order
}
