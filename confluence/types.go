// Package confluence parses Confluence "storage format" markup into
// sections and tables.
package confluence

// Section is the span of a document between one level-3 heading and the
// next. The heading contributes a date (from a <time datetime="..."> child)
// and a title (the text after the last "|" in the heading).
type Section struct {
	// Date is the literal datetime attribute value from the heading, or
	// empty if the heading carries none.
	Date string

	// Title is the cleaned text following the last "|" inside the heading,
	// or empty if the heading has no such suffix.
	Title string

	// Table is the first table embedded in the section's content, or nil
	// when the section contains no table.
	Table *ParsedTable
}

// ParsedTable is a table decomposed into data rows. Header rows (rows
// containing a <th> cell) are dropped during parsing.
type ParsedTable struct {
	Rows [][]TableCell
}

// TableCell is a single cell with its markup stripped to plain text.
type TableCell struct {
	Text string
}
