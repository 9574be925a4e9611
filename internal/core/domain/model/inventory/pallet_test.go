package inventory_test

import (
	"testing"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPallet(t *testing.T) {
	t.Run("should create an empty pallet", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)

		assert.Equal(t, "X", pallet.QualityMark().String())
		assert.Equal(t, 3, pallet.MaxCapacity())
		assert.Equal(t, 0, pallet.CurrentCount())
		assert.Equal(t, 3, pallet.AvailableCapacity())
		assert.True(t, pallet.TotalMass().IsZero())
		_, onLine := pallet.LineID()
		assert.False(t, onLine)
	})

	t.Run("should reject non positive capacity", func(t *testing.T) {
		_, err := inventory.NewPallet(kernel.NewUUID(), mustMark(t, "X"), 0, baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPallet_AddPackage(t *testing.T) {
	t.Run("accepts up to capacity and rejects by quality", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)

		ok, err := pallet.AddPackage(newPackage(t, inventory.Loose, "Y", 1))
		require.ErrorIs(t, err, inventory.ErrQualityMismatch)
		assert.False(t, ok)

		for range 3 {
			ok, err = pallet.AddPackage(newPackage(t, inventory.Loose, "X", 1))
			require.NoError(t, err)
			assert.True(t, ok)
		}

		ok, err = pallet.AddPackage(newPackage(t, inventory.Loose, "X", 1))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 3, pallet.CurrentCount())
		assert.Equal(t, 0, pallet.AvailableCapacity())
	})

	t.Run("rejects cartons before checking quality", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)

		ok, err := pallet.AddPackage(newPackage(t, inventory.Carton, "Y", 1))

		require.ErrorIs(t, err, inventory.ErrTypeMismatch)
		assert.False(t, ok)
	})

	t.Run("links the package to the pallet", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)
		pkg := newPackage(t, inventory.Loose, "X", 2)

		ok, err := pallet.AddPackage(pkg)
		require.NoError(t, err)
		require.True(t, ok)

		location, located := pkg.Location()
		require.True(t, located)
		assert.Equal(t, inventory.PalletLocation, location.Kind())
		assert.True(t, location.ID().IsEqual(pallet.ID()))
	})

	t.Run("does not add the same package twice", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)
		pkg := newPackage(t, inventory.Loose, "X", 2)
		_, _ = pallet.AddPackage(pkg)

		admission, err := pallet.CheckPackage(pkg)
		require.NoError(t, err)
		assert.Equal(t, inventory.AlreadyPresent, admission)

		ok, err := pallet.AddPackage(pkg)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, pallet.CurrentCount())
	})

	t.Run("refuses a package stored on another pallet", func(t *testing.T) {
		first := newPallet(t, "X", 3)
		second := newPallet(t, "X", 3)
		pkg := newPackage(t, inventory.Loose, "X", 2)
		_, _ = first.AddPackage(pkg)

		ok, err := second.AddPackage(pkg)

		require.ErrorIs(t, err, inventory.ErrAlreadyPlaced)
		assert.False(t, ok)
		assert.Equal(t, 0, second.CurrentCount())
	})

	t.Run("computes total mass on demand", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)
		_, _ = pallet.AddPackage(newPackage(t, inventory.Loose, "X", 1.25))
		_, _ = pallet.AddPackage(newPackage(t, inventory.Loose, "X", 2.5))

		assert.True(t, pallet.TotalMass().Equal(decimal.RequireFromString("3.75")))
	})
}

func TestPallet_RemovePackage(t *testing.T) {
	t.Run("removes and unlinks a package", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)
		pkg := newPackage(t, inventory.Loose, "X", 2)
		_, _ = pallet.AddPackage(pkg)

		assert.True(t, pallet.RemovePackage(pkg))
		assert.Equal(t, 0, pallet.CurrentCount())
		_, located := pkg.Location()
		assert.False(t, located)
	})

	t.Run("returns false for an absent package", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)

		assert.False(t, pallet.RemovePackage(newPackage(t, inventory.Loose, "X", 2)))
		assert.False(t, pallet.RemovePackage(nil))
	})

	t.Run("keeps the order of remaining packages", func(t *testing.T) {
		pallet := newPallet(t, "X", 3)
		a := newPackage(t, inventory.Loose, "X", 1)
		b := newPackage(t, inventory.Loose, "X", 1)
		c := newPackage(t, inventory.Loose, "X", 1)
		for _, pkg := range []*inventory.Package{a, b, c} {
			_, _ = pallet.AddPackage(pkg)
		}

		require.True(t, pallet.RemovePackage(b))

		packages := pallet.Packages()
		require.Len(t, packages, 2)
		assert.True(t, packages[0].IsEqual(a))
		assert.True(t, packages[1].IsEqual(c))
	})
}
