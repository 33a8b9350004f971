// Package errs provides standardized error types for the coffeeshop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the application's error taxonomy:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: an identifier does not resolve
//   - InvalidStateTransitionError: an order status change the lifecycle does not permit
//   - VersionConflictError: optimistic concurrency failure at the persistence boundary
//   - VersionIsInvalidError: malformed aggregate version during restoration
//
// Each error type follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct carrying the failure details, constructors
// with and without a cause, and Error()/Unwrap() methods. Callers at the
// transport boundary classify errors via the sentinels to pick response codes.
package errs
