package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery reports inventory totals and the active offload order.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}
