// Package errs provides the typed error set shared by every layer of the
// bakery services.
//
// The taxonomy mirrors how failures travel through the system:
//   - ValidationError: the client payload is malformed (per-field detail)
//   - BadRequestError: the payload is well formed but violates a business rule
//   - NotFoundError: a referenced entity does not exist
//   - ConnectivityError: storage is unreachable
//   - QueryError: storage rejected the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The persistence layer classifies storage faults into the storage-related
// kinds and never lets raw driver errors escape; the HTTP layer renders each
// kind into the wire envelope exactly once.
package errs
