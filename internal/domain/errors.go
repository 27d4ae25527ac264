package domain

import "errors"

// Sentinel errors. Callers check with errors.Is; every failure returned by the
// estimator wraps one of these with a human-readable cause.
var (
	// ErrInvalidArgument is returned when a caller-supplied parameter violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingData is returned when a required year is absent from the wage index table.
	ErrMissingData = errors.New("missing data")

	// ErrParse is returned when an earnings statement has an unsupported schema or is malformed.
	ErrParse = errors.New("parse error")
)
