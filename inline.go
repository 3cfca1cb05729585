package shopmark

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Precompiled inline patterns. Code spans and links have no lookaround
// requirements and use the standard engine; the single-marker emphasis
// rules need negative lookbehind/lookahead (so `**` runs are not misread
// as adjacent `*` pairs), which only regexp2 can express.
var (
	// Inline code span: one backtick pair on a single line.
	codeSpanPattern = regexp.MustCompile("`([^`\n]+)`")

	// Link syntax [label](target). Target validation happens separately:
	// only http(s) targets become anchors.
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()\s]+)\)`)

	// Bold: double markers, lazy inner match.
	boldStarPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscorePattern = regexp.MustCompile(`__(.+?)__`)

	// Italic: single markers guarded against neighboring markers.
	italicStarPattern       = regexp2.MustCompile(`(?<!\*)\*(?!\*)(.+?)(?<!\*)\*(?!\*)`, regexp2.None)
	italicUnderscorePattern = regexp2.MustCompile(`(?<!_)_(?!_)(.+?)(?<!_)_(?!_)`, regexp2.None)
)

// inlineRenderer turns a single text span into a safe HTML fragment:
// protect code spans and links behind placeholder tokens, transform
// emphasis, escape the remaining plain text, then restore the protected
// fragments. Every character of input is escaped exactly once on its way
// to the output.
type inlineRenderer struct {
	maxDepth int
}

// render converts one inline span at the given nesting depth.
// Empty or all-whitespace input yields the empty string.
func (r *inlineRenderer) render(text string, depth int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// Past the ceiling, stop interpreting markers entirely. This bounds
	// stack usage on adversarial inputs such as long marker runs.
	if depth > r.maxDepth {
		return escapeContent(text)
	}

	table := &fragmentTable{depth: depth}
	text = r.protectCodeSpans(text, table)
	text = r.protectLinks(text, depth, table)
	text = r.transformBold(text, depth, table)
	text = r.transformItalic(text, depth, table)
	text = escapeContent(text)
	return table.resolve(text)
}

// protectCodeSpans replaces `code` spans with placeholder tokens. Code
// content is escaped verbatim; no emphasis or link rules apply inside it.
func (r *inlineRenderer) protectCodeSpans(text string, table *fragmentTable) string {
	return codeSpanPattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := match[1 : len(match)-1]
		return table.add("<code>" + escapeContent(inner) + "</code>")
	})
}

// protectLinks replaces [label](url) with placeholder tokens holding the
// rendered anchor. Only http:// and https:// targets are treated as links;
// anything else in target position stays literal text and is escaped with
// the surrounding plain text.
func (r *inlineRenderer) protectLinks(text string, depth int, table *fragmentTable) string {
	return linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		label, target := parts[1], parts[2]

		if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
			return match
		}

		anchor := `<a href="` + escapeAttribute(target) +
			`" target="_blank" rel="noopener noreferrer">` +
			r.render(label, depth+1) + `</a>`
		return table.add(anchor)
	})
}

// transformBold wraps **text** and __text__ in <strong>, rendering the
// inner text one level deeper so nested emphasis and links still work.
func (r *inlineRenderer) transformBold(text string, depth int, table *fragmentTable) string {
	for _, pattern := range []*regexp.Regexp{boldStarPattern, boldUnderscorePattern} {
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			inner := pattern.FindStringSubmatch(match)[1]
			return table.add("<strong>" + r.render(inner, depth+1) + "</strong>")
		})
	}
	return text
}

// transformItalic wraps *text* and _text_ in <em>. The lookaround guards
// keep triple and quadruple marker runs from being misparsed as adjacent
// single markers.
func (r *inlineRenderer) transformItalic(text string, depth int, table *fragmentTable) string {
	for _, pattern := range []*regexp2.Regexp{italicStarPattern, italicUnderscorePattern} {
		replaced, err := pattern.ReplaceFunc(text, func(m regexp2.Match) string {
			inner := m.Groups()[1].String()
			return table.add("<em>" + r.render(inner, depth+1) + "</em>")
		}, -1, -1)
		if err != nil {
			// Only possible with a match timeout, which is not set.
			// Leave the markers as literal text.
			continue
		}
		text = replaced
	}
	return text
}

// fragmentTable is a call-scoped arena of pre-rendered HTML fragments,
// each hidden behind a NUL-delimited index token. Tokens contain no
// HTML-special characters and no markdown markers, so they pass through
// escaping and later pattern matching untouched. A table never outlives
// the render call that created it.
type fragmentTable struct {
	depth     int
	fragments []string
}

// add stores a finished fragment and returns its placeholder token.
func (t *fragmentTable) add(html string) string {
	t.fragments = append(t.fragments, html)
	return t.token(len(t.fragments) - 1)
}

// token builds the placeholder for fragment i. The depth component keeps
// a recursive call's tokens distinct from its caller's, since caller
// tokens travel into recursive calls as opaque text. Input is stripped of
// NUL bytes before rendering, so tokens cannot be forged from outside.
func (t *fragmentTable) token(i int) string {
	return "\x00" + strconv.Itoa(t.depth) + "." + strconv.Itoa(i) + "\x00"
}

// resolve substitutes fragments back for their tokens in two passes:
// first inside the stored fragments themselves (an emphasis fragment may
// have captured the token of a code span or link it wraps), then in the
// top-level text. No token survives into the output either way.
func (t *fragmentTable) resolve(text string) string {
	for i := range t.fragments {
		for j := range t.fragments {
			if j == i {
				continue
			}
			t.fragments[i] = strings.ReplaceAll(t.fragments[i], t.token(j), t.fragments[j])
		}
	}
	for i := range t.fragments {
		text = strings.ReplaceAll(text, t.token(i), t.fragments[i])
	}
	return text
}
