package confluence

import (
	"strings"

	"golang.org/x/net/html"
)

// Clean strips markup tags from a text fragment, decodes entities, collapses
// runs of whitespace (including non-breaking spaces) to a single space, and
// trims the result. It is a total function: any input yields a plain string,
// and input without markup passes through with only whitespace normalized.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<&") {
		return collapseWhitespace(raw)
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// Tag boundaries separate words so "<td>a</td><td>b</td>"
			// never fuses into "ab".
			sb.WriteByte(' ')
		}
	}
	return collapseWhitespace(sb.String())
}

// collapseWhitespace reduces all runs of Unicode whitespace to one space
// and trims leading and trailing whitespace.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
