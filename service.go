package shopmark

import (
	"strings"
)

// Renderer converts catalog text to storefront markup. It holds only
// configuration: every call allocates its own document and placeholder
// state, so a Renderer is safe for concurrent use without coordination.
type Renderer struct {
	cfg       rendererConfig
	segmenter *segmenter
	inline    *inlineRenderer
}

// New creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithMaxDepth).
func New(opts ...Option) *Renderer {
	r := &Renderer{
		cfg: rendererConfig{maxDepth: defaultMaxDepth},
	}

	for _, opt := range opts {
		opt(r)
	}

	r.segmenter = &segmenter{}
	r.inline = &inlineRenderer{maxDepth: r.cfg.maxDepth}
	return r
}

// Render converts text into markup for the given profile.
//
// Absent input (empty or whitespace-only) returns ErrNoContent so callers
// can omit the destination field instead of writing empty markup; any
// other input renders without error. Malformed constructs degrade to
// escaped literal text rather than failing.
func (r *Renderer) Render(text string, profile Profile) (string, error) {
	if err := profile.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoContent
	}

	doc := r.segmenter.segment(normalizeInput(text))
	br := &blockRenderer{inline: r.inline, vocab: vocabFor(profile)}
	return br.render(doc), nil
}

// defaultRenderer backs the package-level Render.
var defaultRenderer = New()

// Render converts text into markup using a Renderer with default
// configuration.
func Render(text string, profile Profile) (string, error) {
	return defaultRenderer.Render(text, profile)
}
