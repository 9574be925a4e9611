package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrOffloadPackageCommandIsNotConstructed = errors.New(
	"OffloadPackageCommand must be created via NewOffloadPackageCommand constructor",
)

// OffloadPackageCommand represents a request to take a package out of its
// line (cartons) or pallet (loose packages) without discarding it.
type OffloadPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOffloadPackageCommand(packageID kernel.UUID) (OffloadPackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return OffloadPackageCommand{}, err
	}

	return OffloadPackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c OffloadPackageCommand) Validate() error {
	return c.guard.Validate(ErrOffloadPackageCommandIsNotConstructed)
}

func (c OffloadPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
