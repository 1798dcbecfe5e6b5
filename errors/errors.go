// Package errors defines all exported error sentinels for the julienne
// bucketing library.
//
// This is the single source of truth for error values. Both the top-level
// julienne package and its internal subpackages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Construction errors.
var (
	ErrUnknownOrder        = errors.New("julienne: unknown bucket order")
	ErrInvalidTotalBuckets = errors.New("julienne: total buckets must be >= 2")
	ErrNegativeUniverse    = errors.New("julienne: n must be >= 0")
)

// Caller contract violations.
var (
	ErrUpdateDomainMismatch = errors.New("julienne: update domain size mismatch")
	ErrClosed               = errors.New("julienne: bucket set is closed")
)
