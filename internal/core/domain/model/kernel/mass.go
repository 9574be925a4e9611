package kernel

import (
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMassIsNotConstructed is returned when validating a zero value Mass.
var ErrMassIsNotConstructed = errs.NewValueIsRequiredError("Mass must be created via NewMass or NewMassFromFloat")

// Mass is a strictly positive weight in kilograms. It is backed by
// decimal.Decimal so that summing pallet loads against a line limit is exact:
// ten packages of 0.1 kg fill a 1 kg line completely.
type Mass struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewMass returns an out of range error unless value > 0.
func NewMass(value decimal.Decimal) (Mass, error) {
	if !value.IsPositive() {
		return Mass{}, errs.NewValueIsOutOfRangeError("mass", value.String(), "0 (exclusive)", "unbounded")
	}
	return Mass{value: value, guard: guard.NewConstructorGuard()}, nil
}

func NewMassFromFloat(value float64) (Mass, error) {
	return NewMass(decimal.NewFromFloat(value))
}

// Decimal returns the mass in kilograms.
func (m Mass) Decimal() decimal.Decimal {
	return m.value
}

func (m Mass) String() string {
	return m.value.String()
}

func (m Mass) IsEqual(other Mass) bool {
	return m.value.Equal(other.value)
}

func (m Mass) Validate() error {
	return m.guard.Validate(ErrMassIsNotConstructed)
}
