package auctionerrors

import "errors"

// Validation errors, raised before any mutation is attempted
var (
	ErrArgumentNull      = errors.New("required argument is missing")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrOutOfRange        = errors.New("argument out of range")
	ErrTimeInconsistency = errors.New("deadline is already in the past")
)

// State errors
var (
	// ErrNotFound means the addressed entity no longer exists (concurrently
	// deleted site, auction, session...).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidOperation means the entity exists but its state forbids the
	// operation (closed auction, expired session, deletion guard).
	ErrInvalidOperation = errors.New("invalid operation")

	ErrNameAlreadyInUse = errors.New("name already in use")
)

// Persistence errors
var (
	// ErrConcurrentModification is transient: the caller may retry the whole
	// operation. Every other kind is terminal for the call.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrUnavailable means the store is unreachable. Fatal to the current call.
	ErrUnavailable = errors.New("persistence unavailable")
)
