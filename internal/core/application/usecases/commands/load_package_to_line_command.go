package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrLoadPackageToLineCommandIsNotConstructed = errors.New(
	"LoadPackageToLineCommand must be created via NewLoadPackageToLineCommand constructor",
)

// LoadPackageToLineCommand represents a request to place a carton on a count line.
//
// Example:
//
//	cmd, _ := NewLoadPackageToLineCommand(cartonID, lineID)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // unknown carton or line
//	}
//	if !placed {
//	    // wrong kind, line full or quality slots exhausted
//	}
type LoadPackageToLineCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	lineID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewLoadPackageToLineCommand(packageID, lineID kernel.UUID) (LoadPackageToLineCommand, error) {
	cmd := LoadPackageToLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setLineID(lineID),
	); err != nil {
		return LoadPackageToLineCommand{}, err
	}

	return cmd, nil
}

func (c LoadPackageToLineCommand) Validate() error {
	return c.guard.Validate(ErrLoadPackageToLineCommandIsNotConstructed)
}

func (c LoadPackageToLineCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c LoadPackageToLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *LoadPackageToLineCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *LoadPackageToLineCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineID = id
	return nil
}
