package shopmark

import (
	"testing"
)

func segmentText(text string) document {
	s := &segmenter{}
	return s.segment(normalizeInput(text))
}

func TestSegmenter_Headings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLevel int
		wantText  string
	}{
		{"h1", "# Overview", 1, "Overview"},
		{"h3", "### Care instructions", 3, "Care instructions"},
		{"h6", "###### Fine print", 6, "Fine print"},
		{"clamped to h6", "####### Too Deep", 6, "Too Deep"},
		{"deeply clamped", "########## Way Down", 6, "Way Down"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := segmentText(tt.input)
			if len(doc) != 1 || doc[0].kind != blockHeading {
				t.Fatalf("segment(%q) = %+v, want one heading", tt.input, doc)
			}
			if doc[0].level != tt.wantLevel || doc[0].text != tt.wantText {
				t.Errorf("heading = level %d text %q, want level %d text %q",
					doc[0].level, doc[0].text, tt.wantLevel, tt.wantText)
			}
		})
	}

	t.Run("hash without space is paragraph", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("#hashtag")
		if len(doc) != 1 || doc[0].kind != blockParagraph {
			t.Fatalf("segment(%q) = %+v, want one paragraph", "#hashtag", doc)
		}
	})
}

func TestSegmenter_Dividers(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"---", "----", "___", "***", "**********"} {
		doc := segmentText(input)
		if len(doc) != 1 || doc[0].kind != blockDivider {
			t.Errorf("segment(%q) = %+v, want one divider", input, doc)
		}
	}

	// Two characters are not a rule.
	doc := segmentText("__")
	if len(doc) != 0 && doc[0].kind == blockDivider {
		t.Errorf("segment(%q) produced a divider", "__")
	}
}

func TestSegmenter_Blockquotes(t *testing.T) {
	t.Parallel()

	doc := segmentText("> Ships in 2 days")
	if len(doc) != 1 || doc[0].kind != blockQuote || doc[0].text != "Ships in 2 days" {
		t.Fatalf("segment = %+v, want one blockquote", doc)
	}

	// One blockquote per quoted line.
	doc = segmentText("> a\n> b")
	if len(doc) != 2 || doc[0].kind != blockQuote || doc[1].kind != blockQuote {
		t.Fatalf("segment = %+v, want two blockquotes", doc)
	}
}

func TestSegmenter_Paragraphs(t *testing.T) {
	t.Parallel()

	t.Run("consecutive lines buffer together", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("first line\nsecond line")
		if len(doc) != 1 || doc[0].kind != blockParagraph {
			t.Fatalf("segment = %+v, want one paragraph", doc)
		}
		if len(doc[0].lines) != 2 || doc[0].lines[0] != "first line" || doc[0].lines[1] != "second line" {
			t.Errorf("paragraph lines = %q", doc[0].lines)
		}
	})

	t.Run("blank line splits paragraphs", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("one\n\ntwo")
		if len(doc) != 2 || doc[0].kind != blockParagraph || doc[1].kind != blockParagraph {
			t.Fatalf("segment = %+v, want two paragraphs", doc)
		}
	})

	t.Run("crlf input", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("one\r\n\r\ntwo")
		if len(doc) != 2 {
			t.Fatalf("segment = %+v, want two paragraphs", doc)
		}
	})
}

func TestSegmenter_Lists(t *testing.T) {
	t.Parallel()

	t.Run("unordered markers group into one list", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("- a\n* b\n+ c")
		if len(doc) != 1 || doc[0].kind != blockList || doc[0].list != listUnordered {
			t.Fatalf("segment = %+v, want one unordered list", doc)
		}
		if len(doc[0].items) != 3 {
			t.Fatalf("items = %+v, want 3", doc[0].items)
		}
		for i, want := range []string{"a", "b", "c"} {
			if doc[0].items[i].text != want || doc[0].items[i].hasOrdinal {
				t.Errorf("item %d = %+v, want text %q without ordinal", i, doc[0].items[i], want)
			}
		}
	})

	t.Run("ordered items keep explicit ordinals", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("5. First\n7) Second")
		if len(doc) != 1 || doc[0].kind != blockList || doc[0].list != listOrdered {
			t.Fatalf("segment = %+v, want one ordered list", doc)
		}
		items := doc[0].items
		if len(items) != 2 {
			t.Fatalf("items = %+v, want 2", items)
		}
		if !items[0].hasOrdinal || items[0].ordinal != 5 || items[0].text != "First" {
			t.Errorf("item 0 = %+v", items[0])
		}
		if !items[1].hasOrdinal || items[1].ordinal != 7 || items[1].text != "Second" {
			t.Errorf("item 1 = %+v", items[1])
		}
	})

	t.Run("kind switch flushes open list", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("- a\n1. b")
		if len(doc) != 2 {
			t.Fatalf("segment = %+v, want two lists", doc)
		}
		if doc[0].list != listUnordered || doc[1].list != listOrdered {
			t.Errorf("list kinds = %v, %v", doc[0].list, doc[1].list)
		}
	})

	t.Run("blank lines do not close a list", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("- a\n\n- b\n\n\n- c")
		if len(doc) != 1 || doc[0].kind != blockList || len(doc[0].items) != 3 {
			t.Fatalf("segment = %+v, want one list of 3 items", doc)
		}
	})

	t.Run("plain line closes a list", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("- a\nafterword")
		if len(doc) != 2 || doc[0].kind != blockList || doc[1].kind != blockParagraph {
			t.Fatalf("segment = %+v, want list then paragraph", doc)
		}
	})

	t.Run("paragraph before list is flushed", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("intro\n- a")
		if len(doc) != 2 || doc[0].kind != blockParagraph || doc[1].kind != blockList {
			t.Fatalf("segment = %+v, want paragraph then list", doc)
		}
	})
}

func TestSegmenter_DashLeadLines(t *testing.T) {
	t.Parallel()

	t.Run("dash without space is paragraph content", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("-tight fit")
		if len(doc) != 1 || doc[0].kind != blockParagraph {
			t.Fatalf("segment = %+v, want one paragraph", doc)
		}
		if doc[0].lines[0] != "tight fit" {
			t.Errorf("line = %q, want leading dash dropped", doc[0].lines[0])
		}
	})

	t.Run("en dash bullet is paragraph content", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("– warranty included")
		if len(doc) != 1 || doc[0].kind != blockParagraph || doc[0].lines[0] != "warranty included" {
			t.Fatalf("segment = %+v, want paragraph %q", doc, "warranty included")
		}
	})

	t.Run("lone dash yields nothing", func(t *testing.T) {
		t.Parallel()
		if doc := segmentText("-"); len(doc) != 0 {
			t.Fatalf("segment = %+v, want empty document", doc)
		}
	})

	t.Run("dash rule does not apply inside a list", func(t *testing.T) {
		t.Parallel()
		doc := segmentText("- a\n-trailing note")
		if len(doc) != 2 || doc[0].kind != blockList || doc[1].kind != blockParagraph {
			t.Fatalf("segment = %+v, want list then paragraph", doc)
		}
		if doc[1].lines[0] != "-trailing note" {
			t.Errorf("line = %q, want dash kept", doc[1].lines[0])
		}
	})
}

func TestSegmenter_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n", "\n\n\n", "   \n\t\n"} {
		if doc := segmentText(input); len(doc) != 0 {
			t.Errorf("segment(%q) = %+v, want empty document", input, doc)
		}
	}
}
