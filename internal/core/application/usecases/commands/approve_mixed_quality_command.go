package commands

import (
	"errors"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrApproveMixedQualityCommandIsNotConstructed = errors.New(
	"ApproveMixedQualityCommand must be created via NewApproveMixedQualityCommand constructor",
)

// ApproveMixedQualityCommand represents a request to let a line hold up to
// maxTypes distinct quality marks. A zero maxTypes means
// inventory.DefaultMixedQualityTypes.
type ApproveMixedQualityCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.UUID
	maxTypes int

	guard guard.ConstructorGuard
}

func NewApproveMixedQualityCommand(lineID kernel.UUID, maxTypes int) (ApproveMixedQualityCommand, error) {
	cmd := ApproveMixedQualityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setMaxTypes(maxTypes),
	); err != nil {
		return ApproveMixedQualityCommand{}, err
	}

	return cmd, nil
}

func (c ApproveMixedQualityCommand) Validate() error {
	return c.guard.Validate(ErrApproveMixedQualityCommandIsNotConstructed)
}

func (c ApproveMixedQualityCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c ApproveMixedQualityCommand) MaxTypes() int {
	return c.maxTypes
}

func (c *ApproveMixedQualityCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.lineID = id
	return nil
}

func (c *ApproveMixedQualityCommand) setMaxTypes(maxTypes int) error {
	if maxTypes == 0 {
		maxTypes = inventory.DefaultMixedQualityTypes
	}
	if maxTypes < 1 {
		return errs.NewValueIsOutOfRangeError("maxTypes", maxTypes, 1, "unbounded")
	}

	c.maxTypes = maxTypes
	return nil
}
