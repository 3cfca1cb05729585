package shopmark

import "strings"

// Entity replacers, precompiled once. Content and attribute escaping share
// the same substitution set today but stay separate operations so
// attribute-specific rules can be added without touching content call sites.
var (
	contentEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	attributeEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// escapeContent neutralizes HTML-special characters in text destined for
// element content. Total over any string, including empty.
func escapeContent(text string) string {
	return contentEscaper.Replace(text)
}

// escapeAttribute neutralizes HTML-special characters in text destined for
// an attribute value, such as a link target.
func escapeAttribute(text string) string {
	return attributeEscaper.Replace(text)
}
