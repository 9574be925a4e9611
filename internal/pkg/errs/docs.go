// Package errs provides the standardized error types of the logistics service.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside of an allowed range
//   - ObjectNotFoundError: a warehouse, line, pallet or package cannot be found
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrValueIsRequired), a struct carrying the details, constructors with
// and without a cause, and an Unwrap method returning the sentinel so that
// callers can classify failures with errors.Is.
package errs
