package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("pallet not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("line not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(nil))
	})
}

func TestConstructorGuard_InsideEntity(t *testing.T) {
	type crate struct {
		label string
		guard guard.ConstructorGuard
	}
	errCrateNotConstructed := errors.New("crate must be created via newCrate")

	newCrate := func(label string) (*crate, error) {
		if label == "" {
			return nil, errors.New("label is required")
		}
		return &crate{label: label, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_built_value_is_valid", func(t *testing.T) {
		c, err := newCrate("A-1")
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errCrateNotConstructed))
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		c := crate{label: "A-1"}
		assert.Equal(t, errCrateNotConstructed, c.guard.Validate(errCrateNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
