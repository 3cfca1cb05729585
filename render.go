package shopmark

import (
	"fmt"
	"strings"
)

// profileVocab is the tag vocabulary for one render profile. The block
// renderer itself is profile-independent; everything that differs between
// the semantic and div-wrapped outputs lives here.
type profileVocab struct {
	headingFormat    string // %[1]d level, %[2]s inline content
	paragraphFormat  string // %s joined lines
	lineJoin         string // separator between paragraph lines
	proseJoin        bool   // space-normalize the joined paragraph
	orderedFormat    string // %s the <ol> element
	unorderedFormat  string // %s the <ul> element
	colonNesting     bool   // fold "item:" + next item into a sublist
	blockquoteFormat string // %s inline content
	divider          string
}

var semanticVocab = profileVocab{
	headingFormat:    "<h%[1]d>%[2]s</h%[1]d>",
	paragraphFormat:  "<p>%s</p>",
	lineJoin:         "<br />",
	orderedFormat:    "%s",
	unorderedFormat:  "%s",
	colonNesting:     true,
	blockquoteFormat: "<blockquote>%s</blockquote>",
	divider:          "<hr />",
}

var divVocab = profileVocab{
	headingFormat:    `<div class="heading heading-%[1]d">%[2]s</div>`,
	paragraphFormat:  `<div class="paragraph">%s</div>`,
	lineJoin:         " ",
	proseJoin:        true,
	orderedFormat:    `<div class="list list-ordered">%s</div>`,
	unorderedFormat:  `<div class="list list-unordered">%s</div>`,
	blockquoteFormat: `<div class="blockquote">%s</div>`,
	divider:          `<div class="divider"></div>`,
}

// vocabFor maps a validated profile to its vocabulary.
func vocabFor(profile Profile) profileVocab {
	if strings.ToLower(string(profile)) == ProfileDiv {
		return divVocab
	}
	return semanticVocab
}

// blockRenderer renders a segmented document into one markup string,
// delegating all textual content to the inline renderer. Blocks with no
// renderable content are dropped rather than emitted empty.
type blockRenderer struct {
	inline *inlineRenderer
	vocab  profileVocab
}

// render concatenates the markup for each block in document order.
func (r *blockRenderer) render(doc document) string {
	var sb strings.Builder
	for _, b := range doc {
		sb.WriteString(r.renderBlock(b))
	}
	return sb.String()
}

func (r *blockRenderer) renderBlock(b block) string {
	switch b.kind {
	case blockHeading:
		inner := r.inline.render(b.text, 0)
		if inner == "" {
			return ""
		}
		return fmt.Sprintf(r.vocab.headingFormat, b.level, inner)

	case blockParagraph:
		return r.renderParagraph(b.lines)

	case blockList:
		return r.renderList(b)

	case blockQuote:
		inner := r.inline.render(b.text, 0)
		if inner == "" {
			return ""
		}
		return fmt.Sprintf(r.vocab.blockquoteFormat, inner)

	case blockDivider:
		return r.vocab.divider
	}
	return ""
}

// renderParagraph renders each physical line independently, then joins
// them: with line breaks in the semantic profile, or into one
// space-normalized run of prose in the div profile.
func (r *blockRenderer) renderParagraph(lines []string) string {
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		if out := r.inline.render(line, 0); out != "" {
			rendered = append(rendered, out)
		}
	}
	if len(rendered) == 0 {
		return ""
	}

	joined := strings.Join(rendered, r.vocab.lineJoin)
	if r.vocab.proseJoin {
		joined = strings.Join(strings.Fields(joined), " ")
	}
	return fmt.Sprintf(r.vocab.paragraphFormat, joined)
}

// renderList renders a list block, preserving explicit ordered numbering:
// a start attribute when the first ordinal differs from 1, and a value
// attribute on any item whose ordinal breaks the running sequence. In the
// semantic profile an unordered item ending with ":" folds the following
// item into a one-item sublist.
func (r *blockRenderer) renderList(b block) string {
	items := make([]listItem, 0, len(b.items))
	for _, item := range b.items {
		if strings.TrimSpace(item.text) != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return ""
	}

	tag, wrap := "ul", r.vocab.unorderedFormat
	if b.list == listOrdered {
		tag, wrap = "ol", r.vocab.orderedFormat
	}

	var sb strings.Builder
	sb.WriteString("<" + tag)
	expected := 1
	if b.list == listOrdered && items[0].hasOrdinal && items[0].ordinal != 1 {
		expected = items[0].ordinal
		fmt.Fprintf(&sb, ` start="%d"`, expected)
	}
	sb.WriteString(">")

	for i := 0; i < len(items); i++ {
		item := items[i]

		attr := ""
		if b.list == listOrdered && item.hasOrdinal && item.ordinal != expected {
			attr = fmt.Sprintf(` value="%d"`, item.ordinal)
			expected = item.ordinal
		}

		text := item.text
		nested := ""
		if r.vocab.colonNesting && b.list == listUnordered &&
			strings.HasSuffix(text, ":") && i+1 < len(items) {
			text = strings.TrimSuffix(text, ":")
			nested = "<ul><li>" + r.inline.render(items[i+1].text, 0) + "</li></ul>"
			i++ // the following item moved into the sublist
		}

		sb.WriteString("<li" + attr + ">" + r.inline.render(text, 0) + nested + "</li>")
		expected++
	}

	sb.WriteString("</" + tag + ">")
	return fmt.Sprintf(wrap, sb.String())
}
