package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDiscardPackageCommandIsNotConstructed = errors.New(
	"DiscardPackageCommand must be created via NewDiscardPackageCommand constructor",
)

// DiscardPackageCommand represents a request to permanently take a package out of service.
type DiscardPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDiscardPackageCommand(packageID kernel.UUID) (DiscardPackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return DiscardPackageCommand{}, err
	}

	return DiscardPackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DiscardPackageCommand) Validate() error {
	return c.guard.Validate(ErrDiscardPackageCommandIsNotConstructed)
}

func (c DiscardPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
