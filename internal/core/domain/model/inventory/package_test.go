package inventory_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("should create a free standing package", func(t *testing.T) {
		id := kernel.NewUUID()
		pkg, err := inventory.NewPackage(id, inventory.Carton, mustMark(t, "A"), mustMass(t, 4.2), baseTime)

		require.NoError(t, err)
		assert.True(t, pkg.ID().IsEqual(id))
		assert.Equal(t, inventory.Carton, pkg.Kind())
		assert.Equal(t, "A", pkg.QualityMark().String())
		assert.Equal(t, "4.2", pkg.Mass().String())
		assert.Equal(t, baseTime, pkg.CreatedAt())
		assert.False(t, pkg.IsDiscarded())
		_, located := pkg.Location()
		assert.False(t, located)
		assert.NoError(t, pkg.Validate())
	})

	t.Run("should aggregate all argument errors", func(t *testing.T) {
		pkg, err := inventory.NewPackage(kernel.UUID{}, inventory.UnknownKind, kernel.QualityMark{}, kernel.Mass{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, pkg)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, kernel.ErrQualityMarkIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrMassIsNotConstructed)
		assert.ErrorIs(t, err, inventory.ErrCreatedAtIsRequired)
	})

	t.Run("should detect zero value", func(t *testing.T) {
		var pkg inventory.Package
		var nilPkg *inventory.Package

		assert.Equal(t, inventory.ErrPackageIsNotConstructed, pkg.Validate())
		assert.Equal(t, inventory.ErrPackageIsNotConstructed, nilPkg.Validate())
	})
}

func TestPackage_Discard(t *testing.T) {
	t.Run("should mark a free standing package", func(t *testing.T) {
		pkg := newPackage(t, inventory.Loose, "A", 1)

		require.NoError(t, pkg.Discard())
		assert.True(t, pkg.IsDiscarded())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		pkg := newPackage(t, inventory.Carton, "A", 1)

		require.NoError(t, pkg.Discard())
		require.NoError(t, pkg.Discard())
		assert.True(t, pkg.IsDiscarded())
	})

	t.Run("should refuse while still stored", func(t *testing.T) {
		pallet := newPallet(t, "A", 2)
		pkg := newPackage(t, inventory.Loose, "A", 1)
		_, err := pallet.AddPackage(pkg)
		require.NoError(t, err)

		err = pkg.Discard()

		require.ErrorIs(t, err, inventory.ErrAlreadyPlaced)
		assert.False(t, pkg.IsDiscarded())

		require.True(t, pallet.RemovePackage(pkg))
		require.NoError(t, pkg.Discard())
	})

	t.Run("discarded package cannot be stored again", func(t *testing.T) {
		pkg := newPackage(t, inventory.Loose, "A", 1)
		require.NoError(t, pkg.Discard())

		ok, err := newPallet(t, "A", 2).AddPackage(pkg)

		assert.False(t, ok)
		assert.True(t, errors.Is(err, inventory.ErrPackageDiscarded))
	})
}

func TestParseKind(t *testing.T) {
	t.Run("should parse known kinds", func(t *testing.T) {
		loose, err := inventory.ParseKind("loose")
		require.NoError(t, err)
		carton, err := inventory.ParseKind(" Carton ")
		require.NoError(t, err)

		assert.Equal(t, inventory.Loose, loose)
		assert.Equal(t, inventory.Carton, carton)
		assert.Equal(t, "carton", carton.String())
	})

	t.Run("should reject unknown kinds", func(t *testing.T) {
		_, err := inventory.ParseKind("crate")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
