package inventory_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func mustMark(t *testing.T, value string) kernel.QualityMark {
	t.Helper()
	mark, err := kernel.NewQualityMark(value)
	require.NoError(t, err)
	return mark
}

func mustMass(t *testing.T, value float64) kernel.Mass {
	t.Helper()
	mass, err := kernel.NewMassFromFloat(value)
	require.NoError(t, err)
	return mass
}

func newPackage(t *testing.T, kind inventory.Kind, mark string, mass float64) *inventory.Package {
	t.Helper()
	pkg, err := inventory.NewPackage(kernel.NewUUID(), kind, mustMark(t, mark), mustMass(t, mass), baseTime)
	require.NoError(t, err)
	return pkg
}

func newPallet(t *testing.T, mark string, maxCapacity int) *inventory.Pallet {
	t.Helper()
	pallet, err := inventory.NewPallet(kernel.NewUUID(), mustMark(t, mark), maxCapacity, baseTime)
	require.NoError(t, err)
	return pallet
}

func newLine(t *testing.T, mode inventory.CapacityMode, maxCapacity float64) *inventory.Line {
	t.Helper()
	line, err := inventory.NewLine(kernel.NewUUID(), 1, mode, decimal.NewFromFloat(maxCapacity))
	require.NoError(t, err)
	return line
}

func newWarehouse(t *testing.T, maxCapacity float64) *inventory.Warehouse {
	t.Helper()
	w, err := inventory.NewWarehouse(kernel.NewUUID(), "Central", decimal.NewFromFloat(maxCapacity), baseTime)
	require.NoError(t, err)
	return w
}

// loadedPallet returns a pallet holding count loose packages of the given mass.
func loadedPallet(t *testing.T, mark string, count int, mass float64) *inventory.Pallet {
	t.Helper()
	pallet := newPallet(t, mark, count)
	for range count {
		ok, err := pallet.AddPackage(newPackage(t, inventory.Loose, mark, mass))
		require.NoError(t, err)
		require.True(t, ok)
	}
	return pallet
}
