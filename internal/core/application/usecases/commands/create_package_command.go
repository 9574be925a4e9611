package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
	ErrQualityMarkIsRequired = errs.NewValueIsRequiredError("qualityMark")
)

// CreatePackageCommand represents a request to register a new loose package or carton.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand("carton", "A", decimal.RequireFromString("12.5"))
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	kind        inventory.Kind
	qualityMark string
	mass        decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreatePackageCommand(packageType, qualityMark string, mass decimal.Decimal) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(packageType),
		cmd.setQualityMark(qualityMark),
		cmd.setMass(mass),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) Kind() inventory.Kind {
	return c.kind
}

func (c CreatePackageCommand) QualityMark() string {
	return c.qualityMark
}

// Mass returns the package weight in kilograms.
func (c CreatePackageCommand) Mass() decimal.Decimal {
	return c.mass
}

func (c *CreatePackageCommand) setKind(packageType string) error {
	kind, err := inventory.ParseKind(packageType)
	if err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreatePackageCommand) setQualityMark(qualityMark string) error {
	qualityMark = strings.TrimSpace(qualityMark)
	if qualityMark == "" {
		return ErrQualityMarkIsRequired
	}

	c.qualityMark = qualityMark
	return nil
}

func (c *CreatePackageCommand) setMass(mass decimal.Decimal) error {
	if !mass.IsPositive() {
		return errs.NewValueIsOutOfRangeError("mass", mass.String(), "0 (exclusive)", "unbounded")
	}

	c.mass = mass
	return nil
}
