package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrRecordStateCommandIsNotConstructed = errors.New(
	"RecordStateCommand must be created via NewRecordStateCommand constructor",
)

// RecordStateCommand requests a state summary without changing the inventory.
// It is issued by the periodic snapshot job.
type RecordStateCommand struct {
	guard guard.ConstructorGuard
}

func NewRecordStateCommand() RecordStateCommand {
	return RecordStateCommand{guard: guard.NewConstructorGuard()}
}

func (c RecordStateCommand) Validate() error {
	return c.guard.Validate(ErrRecordStateCommandIsNotConstructed)
}
