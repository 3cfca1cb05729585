package shopmark

import (
	"fmt"
	"strings"
)

// Profile constants.
const (
	ProfileSemantic = "semantic"
	ProfileDiv      = "div"
)

// Profile selects the markup vocabulary used for each block kind: semantic
// tags (h1..h6, p, ol/ul, blockquote, hr) or generically classed <div>
// containers for destinations that strip semantic markup. The profile does
// not change how text is segmented into blocks.
type Profile string

// Validate checks that the profile is a known value.
// Does not mutate - uses case-insensitive comparison.
func (p Profile) Validate() error {
	if isValidProfile(string(p)) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidProfile, string(p))
}

// isValidProfile checks if profile is a known profile (case-insensitive).
func isValidProfile(profile string) bool {
	switch strings.ToLower(profile) {
	case ProfileSemantic, ProfileDiv:
		return true
	}
	return false
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	maxDepth int
}

// defaultMaxDepth is used when no depth ceiling is specified.
const defaultMaxDepth = 10

// WithMaxDepth sets the inline nesting depth ceiling. Spans nested deeper
// than n render as escaped literal text instead of markup.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxDepth(n int) Option {
	if n <= 0 {
		panic("shopmark: WithMaxDepth value must be positive")
	}
	return func(r *Renderer) {
		r.cfg.maxDepth = n
	}
}
