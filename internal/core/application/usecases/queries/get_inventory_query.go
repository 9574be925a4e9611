package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetPackagesQueryIsNotConstructed = errors.New(
		"GetPackagesQuery must be created via NewGetPackagesQuery constructor",
	)
	ErrGetPalletsQueryIsNotConstructed = errors.New(
		"GetPalletsQuery must be created via NewGetPalletsQuery constructor",
	)
)

// GetPackagesQuery lists every registered package, stored or not.
type GetPackagesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPackagesQuery() GetPackagesQuery {
	return GetPackagesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesQueryIsNotConstructed)
}

// GetPalletsQuery lists every registered pallet.
type GetPalletsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPalletsQuery() GetPalletsQuery {
	return GetPalletsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPalletsQuery) Validate() error {
	return q.guard.Validate(ErrGetPalletsQueryIsNotConstructed)
}
