package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOffloadQueueQueryIsNotConstructed = errors.New(
	"GetOffloadQueueQuery must be created via NewGetOffloadQueueQuery constructor",
)

// OffloadScope tells whether the queue is built for a warehouse or a line.
type OffloadScope int

const (
	WarehouseScope OffloadScope = iota + 1
	LineScope
)

// GetOffloadQueueQuery lists the packages of a warehouse or a line in the
// order they should be offloaded under the current policy.
type GetOffloadQueueQuery struct {
	scope OffloadScope
	id    kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOffloadQueueQuery(scope OffloadScope, id kernel.UUID) (GetOffloadQueueQuery, error) {
	if scope != WarehouseScope && scope != LineScope {
		return GetOffloadQueueQuery{}, errs.NewValueIsInvalidError("scope")
	}
	if err := id.Validate(); err != nil {
		return GetOffloadQueueQuery{}, err
	}
	return GetOffloadQueueQuery{
		scope: scope,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOffloadQueueQuery) Scope() OffloadScope {
	return q.scope
}

func (q GetOffloadQueueQuery) ID() kernel.UUID {
	return q.id
}

func (q GetOffloadQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetOffloadQueueQueryIsNotConstructed)
}
