package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreatePalletCommandIsNotConstructed = errors.New(
	"CreatePalletCommand must be created via NewCreatePalletCommand constructor",
)

// CreatePalletCommand represents a request to register an empty pallet.
type CreatePalletCommand struct { //nolint:recvcheck //using for validation
	qualityMark string
	maxCapacity int

	guard guard.ConstructorGuard
}

func NewCreatePalletCommand(qualityMark string, maxCapacity int) (CreatePalletCommand, error) {
	cmd := CreatePalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQualityMark(qualityMark),
		cmd.setMaxCapacity(maxCapacity),
	); err != nil {
		return CreatePalletCommand{}, err
	}

	return cmd, nil
}

func (c CreatePalletCommand) Validate() error {
	return c.guard.Validate(ErrCreatePalletCommandIsNotConstructed)
}

func (c CreatePalletCommand) QualityMark() string {
	return c.qualityMark
}

// MaxCapacity returns the maximum number of packages.
func (c CreatePalletCommand) MaxCapacity() int {
	return c.maxCapacity
}

func (c *CreatePalletCommand) setQualityMark(qualityMark string) error {
	qualityMark = strings.TrimSpace(qualityMark)
	if qualityMark == "" {
		return ErrQualityMarkIsRequired
	}

	c.qualityMark = qualityMark
	return nil
}

func (c *CreatePalletCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsOutOfRangeError("maxCapacity", maxCapacity, 1, "unbounded")
	}

	c.maxCapacity = maxCapacity
	return nil
}
