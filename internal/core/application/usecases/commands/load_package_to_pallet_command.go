package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrLoadPackageToPalletCommandIsNotConstructed = errors.New(
	"LoadPackageToPalletCommand must be created via NewLoadPackageToPalletCommand constructor",
)

// LoadPackageToPalletCommand represents a request to put a loose package on a pallet.
type LoadPackageToPalletCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	palletID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewLoadPackageToPalletCommand(packageID, palletID kernel.UUID) (LoadPackageToPalletCommand, error) {
	cmd := LoadPackageToPalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setPalletID(palletID),
	); err != nil {
		return LoadPackageToPalletCommand{}, err
	}

	return cmd, nil
}

func (c LoadPackageToPalletCommand) Validate() error {
	return c.guard.Validate(ErrLoadPackageToPalletCommandIsNotConstructed)
}

func (c LoadPackageToPalletCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c LoadPackageToPalletCommand) PalletID() kernel.UUID {
	return c.palletID
}

func (c *LoadPackageToPalletCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *LoadPackageToPalletCommand) setPalletID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.palletID = id
	return nil
}
