package shopmark

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// blockKind tags the variant held by a block.
type blockKind int

const (
	blockHeading blockKind = iota
	blockParagraph
	blockList
	blockQuote
	blockDivider
)

// listKind distinguishes ordered from unordered lists.
type listKind int

const (
	listUnordered listKind = iota
	listOrdered
)

// listItem is one list entry. ordinal is meaningful only when hasOrdinal
// is true, i.e. for ordered items that carried an explicit leading number.
type listItem struct {
	ordinal    int
	hasOrdinal bool
	text       string
}

// block is a tagged variant: only the fields for its kind are set.
// Blocks are immutable once emitted into the document.
type block struct {
	kind  blockKind
	level int        // heading
	text  string     // heading, blockquote
	lines []string   // paragraph
	list  listKind   // list
	items []listItem // list
}

// document is the fully materialized block sequence for one conversion.
// Segmentation completes before any rendering begins.
type document []block

// Precompiled line classification patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Heading marker: hashes then text. The marker count is clamped to 6
	// at emission, so over-deep headings stay headings.
	headingLine = regexp.MustCompile(`^(#+)\s+(.*\S)\s*$`)

	// Horizontal rule: a run of 3+ of the same divider character.
	dividerLine = regexp.MustCompile(`^(-{3,}|_{3,}|\*{3,})$`)

	// Explicit list grammar: marker, whitespace, non-empty text.
	orderedItemLine   = regexp.MustCompile(`^(\d+)[.)]\s+(.*\S)\s*$`)
	unorderedItemLine = regexp.MustCompile(`^[-*+]\s+(.*\S)\s*$`)
)

// normalizeInput converts CRLF/CR line endings to LF and strips NUL bytes
// so placeholder tokens cannot be forged from catalog text.
func normalizeInput(text string) string {
	text = crlfOrCR.ReplaceAllString(text, "\n")
	return strings.ReplaceAll(text, "\x00", "")
}

// segmenter groups physical lines into typed blocks with one
// left-to-right pass over a small state machine: no open block, an open
// paragraph buffer, or an open list of a given kind.
type segmenter struct{}

// segment classifies each line of text and returns the block sequence.
func (s *segmenter) segment(text string) document {
	var (
		doc       document
		paragraph []string
		items     []listItem
		openKind  listKind
		inList    bool
	)

	flushParagraph := func() {
		if len(paragraph) > 0 {
			doc = append(doc, block{kind: blockParagraph, lines: paragraph})
			paragraph = nil
		}
	}
	flushList := func() {
		if inList {
			doc = append(doc, block{kind: blockList, list: openKind, items: items})
			items = nil
			inList = false
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			// Blank lines end a paragraph but are tolerated inside list
			// runs, preserving the open list.
			flushParagraph()

		case headingLine.MatchString(line):
			flushParagraph()
			flushList()
			m := headingLine.FindStringSubmatch(line)
			level := len(m[1])
			if level > 6 {
				level = 6
			}
			doc = append(doc, block{kind: blockHeading, level: level, text: m[2]})

		case dividerLine.MatchString(line):
			flushParagraph()
			flushList()
			doc = append(doc, block{kind: blockDivider})

		case strings.HasPrefix(line, ">"):
			flushParagraph()
			flushList()
			quoted := strings.TrimSpace(strings.TrimPrefix(line, ">"))
			doc = append(doc, block{kind: blockQuote, text: quoted})

		case orderedItemLine.MatchString(line):
			flushParagraph()
			if inList && openKind != listOrdered {
				flushList()
			}
			m := orderedItemLine.FindStringSubmatch(line)
			item := listItem{text: m[2]}
			if n, err := strconv.Atoi(m[1]); err == nil {
				item.ordinal = n
				item.hasOrdinal = true
			}
			inList = true
			openKind = listOrdered
			items = append(items, item)

		case unorderedItemLine.MatchString(line):
			flushParagraph()
			if inList && openKind != listUnordered {
				flushList()
			}
			m := unorderedItemLine.FindStringSubmatch(line)
			inList = true
			openKind = listUnordered
			items = append(items, listItem{text: m[1]})

		case !inList && hasDashLead(line):
			// Stray dash bullets from copy-pasted catalog text. Not list
			// grammar: the dash is dropped and the rest, if any, is
			// ordinary paragraph content.
			if rest := strings.TrimSpace(trimDashLead(line)); rest != "" {
				paragraph = append(paragraph, rest)
			}

		default:
			flushList()
			paragraph = append(paragraph, line)
		}
	}

	flushParagraph()
	flushList()
	return doc
}

// hasDashLead reports whether the line starts with a dash-like rune:
// hyphen-minus, en dash, or em dash.
func hasDashLead(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return r == '-' || r == '–' || r == '—'
}

// trimDashLead removes the leading dash-like rune.
func trimDashLead(line string) string {
	_, size := utf8.DecodeRuneInString(line)
	return line[size:]
}
