package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWarehouseCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateWarehouseCommand(" North ", decimal.NewFromInt(500))

		require.NoError(t, err)
		assert.Equal(t, "North", cmd.Name())
		assert.True(t, cmd.MaxCapacity().Equal(decimal.NewFromInt(500)))
		assert.NoError(t, cmd.Validate())
	})

	t.Run("blank name and negative capacity", func(t *testing.T) {
		_, err := commands.NewCreateWarehouseCommand("", decimal.NewFromInt(-5))

		require.ErrorIs(t, err, commands.ErrWarehouseNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.CreateWarehouseCommand{}.Validate(), commands.ErrCreateWarehouseCommandIsNotConstructed)
	})
}

func TestNewCreateLineCommand(t *testing.T) {
	t.Run("parses the capacity type", func(t *testing.T) {
		cmd, err := commands.NewCreateLineCommand(kernel.NewUUID(), 4, decimal.NewFromInt(10), "weight")

		require.NoError(t, err)
		assert.Equal(t, inventory.WeightCapacity, cmd.Mode())
		assert.Equal(t, 4, cmd.Number())
	})

	t.Run("aggregates errors", func(t *testing.T) {
		_, err := commands.NewCreateLineCommand(kernel.UUID{}, 0, decimal.Zero, "volume")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, commands.ErrLineNumberIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCreatePackageCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewCreatePackageCommand("loose", " B ", decimal.RequireFromString("0.5"))

		require.NoError(t, err)
		assert.Equal(t, inventory.Loose, cmd.Kind())
		assert.Equal(t, "B", cmd.QualityMark())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand("crate", "", decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, commands.ErrQualityMarkIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewCreatePalletCommand(t *testing.T) {
	_, err := commands.NewCreatePalletCommand("A", 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewCreatePalletCommand("A", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, cmd.MaxCapacity())
}

func TestPlacementCommands_RequireSerialNumbers(t *testing.T) {
	valid := kernel.NewUUID()

	_, err := commands.NewLoadPackageToLineCommand(kernel.UUID{}, valid)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewLoadPackageToPalletCommand(valid, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewLoadPalletToLineCommand(kernel.UUID{}, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewOffloadPackageCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewOffloadPalletCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewDiscardPackageCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewApproveMixedQualityCommand(t *testing.T) {
	t.Run("zero uses the default slot count", func(t *testing.T) {
		cmd, err := commands.NewApproveMixedQualityCommand(kernel.NewUUID(), 0)

		require.NoError(t, err)
		assert.Equal(t, inventory.DefaultMixedQualityTypes, cmd.MaxTypes())
	})

	t.Run("negative is out of range", func(t *testing.T) {
		_, err := commands.NewApproveMixedQualityCommand(kernel.NewUUID(), -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewSetOffloadOrderCommand(t *testing.T) {
	_, err := commands.NewSetOffloadOrderCommand("  ")
	require.ErrorIs(t, err, commands.ErrOffloadOrderIsRequired)

	cmd, err := commands.NewSetOffloadOrderCommand("newest_first")
	require.NoError(t, err)
	assert.Equal(t, "newest_first", cmd.Order())
}
