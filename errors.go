package shopmark

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNoContent reports that the input had nothing to render (absent,
	// empty, or whitespace-only). Callers distinguish this from a valid
	// empty result to decide whether to omit the destination field.
	ErrNoContent = errors.New("no content to render")

	// ErrInvalidProfile reports an unknown render profile.
	ErrInvalidProfile = errors.New("invalid render profile")
)
