package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetLineHistoryQueryIsNotConstructed = errors.New(
	"GetLineHistoryQuery must be created via NewGetLineHistoryQuery constructor",
)

type GetLineHistoryQuery struct {
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLineHistoryQuery(lineID kernel.UUID) (GetLineHistoryQuery, error) {
	if err := lineID.Validate(); err != nil {
		return GetLineHistoryQuery{}, err
	}
	return GetLineHistoryQuery{
		lineID: lineID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetLineHistoryQuery) LineID() kernel.UUID {
	return q.lineID
}

func (q GetLineHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetLineHistoryQueryIsNotConstructed)
}
