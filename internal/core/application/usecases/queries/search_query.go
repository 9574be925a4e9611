package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/guard"
)

var (
	ErrSearchPackageQueryIsNotConstructed = errors.New(
		"SearchPackageQuery must be created via NewSearchPackageQuery constructor",
	)
	ErrSearchPalletQueryIsNotConstructed = errors.New(
		"SearchPalletQuery must be created via NewSearchPalletQuery constructor",
	)
)

// SearchPackageQuery finds a stored package by serial number across all
// warehouses. A serial that cannot be parsed simply matches nothing.
type SearchPackageQuery struct {
	serial string

	guard guard.ConstructorGuard
}

func NewSearchPackageQuery(serial string) SearchPackageQuery {
	return SearchPackageQuery{
		serial: strings.TrimSpace(serial),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q SearchPackageQuery) Serial() string {
	return q.serial
}

func (q SearchPackageQuery) Validate() error {
	return q.guard.Validate(ErrSearchPackageQueryIsNotConstructed)
}

// SearchPalletQuery finds a pallet placed on a line by serial number.
type SearchPalletQuery struct {
	serial string

	guard guard.ConstructorGuard
}

func NewSearchPalletQuery(serial string) SearchPalletQuery {
	return SearchPalletQuery{
		serial: strings.TrimSpace(serial),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q SearchPalletQuery) Serial() string {
	return q.serial
}

func (q SearchPalletQuery) Validate() error {
	return q.guard.Validate(ErrSearchPalletQueryIsNotConstructed)
}
