package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrOffloadPalletCommandIsNotConstructed = errors.New(
	"OffloadPalletCommand must be created via NewOffloadPalletCommand constructor",
)

// OffloadPalletCommand represents a request to take a pallet off its line.
type OffloadPalletCommand struct { //nolint:recvcheck //using for validation
	palletID kernel.UUID

	guard guard.ConstructorGuard
}

func NewOffloadPalletCommand(palletID kernel.UUID) (OffloadPalletCommand, error) {
	if err := palletID.Validate(); err != nil {
		return OffloadPalletCommand{}, err
	}

	return OffloadPalletCommand{
		palletID: palletID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c OffloadPalletCommand) Validate() error {
	return c.guard.Validate(ErrOffloadPalletCommandIsNotConstructed)
}

func (c OffloadPalletCommand) PalletID() kernel.UUID {
	return c.palletID
}
