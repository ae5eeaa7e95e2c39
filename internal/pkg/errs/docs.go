// Package errs provides the standardized error vocabulary of the dispatch
// service. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the application.
//
// The package covers the error kinds the domain distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value is outside its bounds (e.g. battery percentage)
//   - ObjectNotFoundError: an entity is absent or not visible to the caller
//   - ConflictError: a uniqueness violation or a lost concurrent update
//   - InvalidTransitionError: a forbidden order-status transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The HTTP boundary relies on the sentinels to map domain failures to
// status codes, so every error surfaced by a use case should be built
// through this package.
package errs
