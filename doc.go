// Package shopmark converts lightly structured catalog text into safe,
// well-formed storefront markup.
//
// # Quick Start
//
// Create a renderer and convert text for a destination field:
//
//	r := shopmark.New()
//	markup, err := r.Render(description, shopmark.ProfileSemantic)
//	if errors.Is(err, shopmark.ErrNoContent) {
//	    // omit the destination field entirely
//	}
//
// Or use the package-level convenience for default configuration:
//
//	markup, err := shopmark.Render(description, shopmark.ProfileDiv)
//
// # Conversion Pipeline
//
// Rendering is a two-pass, in-process conversion:
//
//  1. Segmentation: lines are classified into typed blocks (headings,
//     paragraphs, ordered/unordered lists, blockquotes, dividers).
//  2. Rendering: blocks are rendered into the selected profile's
//     vocabulary, with inline spans (code, links, bold, italic) handled
//     per text span.
//
// The supported construct set is deliberately small. There are no images,
// tables, nested blockquotes, multi-level explicit list nesting, or
// footnotes: catalog text is expected to be prose with light structure,
// not full Markdown.
//
// # Profiles
//
// ProfileSemantic emits semantic tags (h1..h6, p, ol/ul, blockquote, hr)
// for storefront display. ProfileDiv emits generically classed <div>
// containers for rich-text destinations that strip semantic tags. The
// profile only changes the output vocabulary, never how text is
// segmented.
//
// # Safety
//
// Input is treated as plain text that may contain incidental HTML-special
// characters, never as intentional HTML. Every character reaching the
// output has been entity-escaped exactly once; link targets are limited
// to http and https and carry target="_blank" with
// rel="noopener noreferrer". Malformed or adversarial input (unmatched
// markers, unterminated code spans, deeply nested emphasis) degrades to
// escaped literal text. A fixed recursion ceiling keeps worst-case work
// linear in input size.
//
// # Concurrency
//
// A Renderer performs no I/O and keeps no per-call state between
// invocations, so one Renderer may be shared freely across goroutines.
package shopmark
