// Package textclean strips HTML markup and normalizes whitespace in
// article bodies before they are sent to the model.
package textclean

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptRx    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRx     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	brRx        = regexp.MustCompile(`(?i)<br\s*/?>`)
	pCloseRx    = regexp.MustCompile(`(?i)</p\s*>`)
	tagRx       = regexp.MustCompile(`(?s)<[^>]*>`)
	openTagRx   = regexp.MustCompile(`<[a-zA-Z][^>]*>`)
	hspaceRx    = regexp.MustCompile(`[ \t]+`)
	multiLineRx = regexp.MustCompile(`\n\s*\n\s*\n+`)
	lineEdgeRx  = regexp.MustCompile(` *\n *`)
)

// Clean removes markup from raw article text and normalizes whitespace.
// It is total: any input, including the empty string, yields a string.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := scriptRx.ReplaceAllString(raw, " ")
	text = styleRx.ReplaceAllString(text, " ")
	text = brRx.ReplaceAllString(text, "\n")
	text = pCloseRx.ReplaceAllString(text, "\n")
	text = tagRx.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, " ", " ")

	text = hspaceRx.ReplaceAllString(text, " ")
	text = lineEdgeRx.ReplaceAllString(text, "\n")
	text = multiLineRx.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// HasMarkup reports whether s still contains an opening HTML tag.
func HasMarkup(s string) bool {
	if s == "" {
		return false
	}
	return openTagRx.MatchString(s)
}
