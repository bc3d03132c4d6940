package confluence

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to the sections of a storage-format document.
type Reader struct {
	sections []Section
}

// OpenReader parses storage-format markup from an io.Reader.
//
// The underlying HTML parser is lenient: malformed markup never produces an
// error, only a best-effort DOM. A document with no level-3 headings yields
// an empty section sequence.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	reader := &Reader{sections: make([]Section, 0)}
	reader.scan(doc)
	return reader, nil
}

// ParseDocument parses a storage-format markup string into sections.
func ParseDocument(markup string) ([]Section, error) {
	r, err := OpenReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return r.Sections(), nil
}

// Sections returns the parsed sections in document order.
func (r *Reader) Sections() []Section {
	return r.sections
}

// scan walks the DOM in document order. Each <h3> starts a new section;
// content between headings attaches to the current section. Content before
// the first heading (the preamble) is ignored.
func (r *Reader) scan(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h3":
			r.sections = append(r.sections, parseHeading(n))
			return
		case "table":
			// Only the first table in a section is considered.
			if len(r.sections) > 0 {
				current := &r.sections[len(r.sections)-1]
				if current.Table == nil {
					current.Table = parseTable(n)
				}
			}
			return
		case "script", "style", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.scan(c)
	}
}

// parseHeading extracts the date and title from a level-3 heading.
//
// The date is the datetime attribute of the first <time> descendant, so it
// survives attribute reordering and extra wrapper elements. The title is
// everything after the first "|" in the heading's text content — headings
// read "<date> | <title>", and the title itself may contain further pipes.
// A heading without a "|" has an empty title.
func parseHeading(h3 *html.Node) Section {
	sec := Section{}

	if t := findElement(h3, "time"); t != nil {
		for _, attr := range t.Attr {
			if attr.Key == "datetime" {
				sec.Date = attr.Val
				break
			}
		}
	}

	text := textContent(h3)
	if i := strings.Index(text, "|"); i >= 0 {
		sec.Title = collapseWhitespace(text[i+1:])
	}

	return sec
}

// parseTable decomposes a table element into data rows. Rows live directly
// under the table or under <thead>/<tbody> wrappers; rows of tables nested
// inside cells never surface here. Rows containing a <th> cell are header
// rows and are dropped.
func parseTable(tableNode *html.Node) *ParsedTable {
	table := &ParsedTable{Rows: make([][]TableCell, 0)}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					appendRow(table, tr)
				}
			}
		case "tr":
			appendRow(table, c)
		}
	}

	return table
}

// appendRow parses one <tr> and appends it to the table unless it is a
// header row or has no cells.
func appendRow(table *ParsedTable, tr *html.Node) {
	row := make([]TableCell, 0)

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			// A header cell marks the whole row as a header row.
			return
		case "td":
			row = append(row, TableCell{Text: collapseWhitespace(textContent(c))})
		}
	}

	if len(row) > 0 {
		table.Rows = append(table.Rows, row)
	}
}

// findElement returns the first descendant element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tagName); found != nil {
			return found
		}
	}
	return nil
}

// textContent extracts all text from a node and its descendants, inserting
// separators at block boundaries so adjacent cells and paragraphs do not
// run together.
func textContent(n *html.Node) string {
	var sb strings.Builder
	textContentRecursive(n, &sb)
	return strings.TrimSpace(sb.String())
}

func textContentRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		case "br":
			sb.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "td", "th", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString(" ")
		}
	}
}
