package domain

import "errors"

// Sentinel errors for the generate/analyze boundary. Callers match with
// errors.Is; the HTTP adapter maps them onto status codes.
var (
	// ErrInvalidParameter rejects out-of-bounds grid sizes, bad color
	// subsets, and unknown tokens. Inputs are never silently clamped here;
	// UI-facing sanitization happens upstream.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDistribution surfaces a balanced-partition post-check failure
	// after bounded retries. It indicates an implementation bug and is
	// never swallowed.
	ErrDistribution = errors.New("ink distribution validation failed")

	// ErrNotFound is returned by history storage lookups.
	ErrNotFound = errors.New("not found")
)
