package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrWarehouseNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateWarehouseCommand represents a request to open a new warehouse.
//
// Example:
//
//	cmd, err := NewCreateWarehouseCommand("North", decimal.NewFromInt(5000))
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse data: %w", err)
//	}
//
//	handler := NewCreateWarehouseCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	name        string
	maxCapacity decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand validates that the name is not blank and the
// capacity is not negative.
func NewCreateWarehouseCommand(name string, maxCapacity decimal.Decimal) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setMaxCapacity(maxCapacity),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return cmd, nil
}

func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) Name() string {
	return c.name
}

// MaxCapacity returns the advisory capacity in kilograms.
func (c CreateWarehouseCommand) MaxCapacity() decimal.Decimal {
	return c.maxCapacity
}

func (c *CreateWarehouseCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrWarehouseNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateWarehouseCommand) setMaxCapacity(maxCapacity decimal.Decimal) error {
	if maxCapacity.IsNegative() {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity.String(), 0, "unbounded")
	}

	c.maxCapacity = maxCapacity
	return nil
}
