package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrQualityMarkIsRequired is returned for an empty or blank mark.
	ErrQualityMarkIsRequired = errs.NewValueIsRequiredError("qualityMark")
	// ErrQualityMarkIsNotConstructed is returned when validating a zero value QualityMark.
	ErrQualityMarkIsNotConstructed = errs.NewValueIsRequiredError("QualityMark must be created via NewQualityMark")
)

// QualityMark is the grade tag of goods. Goods with different marks may only
// share a line that is approved for mixed quality, and never share a pallet.
//
// Marks are compared exactly after trimming surrounding whitespace, so "A"
// and "a" are different grades.
type QualityMark struct {
	value string
	guard guard.ConstructorGuard
}

func NewQualityMark(value string) (QualityMark, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return QualityMark{}, ErrQualityMarkIsRequired
	}
	return QualityMark{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (q QualityMark) String() string {
	return q.value
}

func (q QualityMark) IsEqual(other QualityMark) bool {
	return q.value == other.value
}

func (q QualityMark) Validate() error {
	return q.guard.Validate(ErrQualityMarkIsNotConstructed)
}
