package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetWarehousesQueryIsNotConstructed = errors.New(
	"GetWarehousesQuery must be created via NewGetWarehousesQuery constructor",
)

// GetWarehousesQuery lists every registered warehouse with its capacity usage.
//
// Example:
//
//	query := NewGetWarehousesQuery()
//	handler := NewGetWarehousesQueryHandler(uowFactory)
//
//	warehouses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list warehouses: %w", err)
//	}
type GetWarehousesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWarehousesQuery() GetWarehousesQuery {
	return GetWarehousesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehousesQueryIsNotConstructed)
}
