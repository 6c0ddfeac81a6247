package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a record with the same identity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCriterion indicates a score was submitted for a criterion
	// outside the fixed evaluation set. This is a programmer error, not a
	// user-facing validation failure.
	ErrUnknownCriterion = errors.New("unknown evaluation criterion")

	// ErrInvalidScore indicates a criterion score outside the fixed levels
	// (10, 20, 30, 40, 50). Like ErrUnknownCriterion, a programmer error.
	ErrInvalidScore = errors.New("invalid criterion score")

	// ErrDeleteNotConfirmed indicates a vendor delete was requested without
	// the explicit confirmation step.
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")

	// ErrSuperseded indicates a remote response arrived after a newer request
	// was issued for the same record and was discarded.
	ErrSuperseded = errors.New("superseded by a newer request")
)
