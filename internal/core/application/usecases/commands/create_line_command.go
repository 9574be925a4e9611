package commands

import (
	"errors"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateLineCommandIsNotConstructed = errors.New(
		"CreateLineCommand must be created via NewCreateLineCommand constructor",
	)
	ErrLineNumberIsInvalid = errs.NewValueIsInvalidError("lineNumber")
)

// CreateLineCommand represents a request to add a new storage line to a warehouse.
type CreateLineCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	number      int
	maxCapacity decimal.Decimal
	mode        inventory.CapacityMode

	guard guard.ConstructorGuard
}

// NewCreateLineCommand parses the capacity type ("count" or "weight") and
// validates that the line number and capacity are positive.
func NewCreateLineCommand(
	warehouseID kernel.UUID,
	number int,
	maxCapacity decimal.Decimal,
	capacityType string,
) (CreateLineCommand, error) {
	cmd := CreateLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setNumber(number),
		cmd.setMaxCapacity(maxCapacity),
		cmd.setMode(capacityType),
	); err != nil {
		return CreateLineCommand{}, err
	}

	return cmd, nil
}

func (c CreateLineCommand) Validate() error {
	return c.guard.Validate(ErrCreateLineCommandIsNotConstructed)
}

func (c CreateLineCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c CreateLineCommand) Number() int {
	return c.number
}

func (c CreateLineCommand) MaxCapacity() decimal.Decimal {
	return c.maxCapacity
}

func (c CreateLineCommand) Mode() inventory.CapacityMode {
	return c.mode
}

func (c *CreateLineCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.warehouseID = id
	return nil
}

func (c *CreateLineCommand) setNumber(number int) error {
	if number <= 0 {
		return ErrLineNumberIsInvalid
	}

	c.number = number
	return nil
}

func (c *CreateLineCommand) setMaxCapacity(maxCapacity decimal.Decimal) error {
	if !maxCapacity.IsPositive() {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity.String(), "0 (exclusive)", "unbounded")
	}

	c.maxCapacity = maxCapacity
	return nil
}

func (c *CreateLineCommand) setMode(capacityType string) error {
	mode, err := inventory.ParseCapacityMode(capacityType)
	if err != nil {
		return err
	}

	c.mode = mode
	return nil
}
