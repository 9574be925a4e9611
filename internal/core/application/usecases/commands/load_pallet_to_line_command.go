package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrLoadPalletToLineCommandIsNotConstructed = errors.New(
	"LoadPalletToLineCommand must be created via NewLoadPalletToLineCommand constructor",
)

// LoadPalletToLineCommand represents a request to place a pallet on a weight line.
type LoadPalletToLineCommand struct { //nolint:recvcheck //using for validation
	palletID kernel.UUID
	lineID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewLoadPalletToLineCommand(palletID, lineID kernel.UUID) (LoadPalletToLineCommand, error) {
	cmd := LoadPalletToLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPalletID(palletID),
		cmd.setLineID(lineID),
	); err != nil {
		return LoadPalletToLineCommand{}, err
	}

	return cmd, nil
}

func (c LoadPalletToLineCommand) Validate() error {
	return c.guard.Validate(ErrLoadPalletToLineCommandIsNotConstructed)
}

func (c LoadPalletToLineCommand) PalletID() kernel.UUID {
	return c.palletID
}

func (c LoadPalletToLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *LoadPalletToLineCommand) setPalletID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.palletID = id
	return nil
}

func (c *LoadPalletToLineCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineID = id
	return nil
}
