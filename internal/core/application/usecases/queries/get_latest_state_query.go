package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetLatestStateQueryIsNotConstructed = errors.New(
	"GetLatestStateQuery must be created via NewGetLatestStateQuery constructor",
)

// GetLatestStateQuery reads the last state summary written by the recorder.
type GetLatestStateQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLatestStateQuery() GetLatestStateQuery {
	return GetLatestStateQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLatestStateQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestStateQueryIsNotConstructed)
}
