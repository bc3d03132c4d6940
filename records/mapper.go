package records

import (
	"regexp"
	"strings"
	"time"

	"github.com/tsawler/relnotes/confluence"
	"github.com/tsawler/relnotes/model"
)

// Fixed placeholder bodies for sections without usable tabular data.
const (
	// BodyNoTable is used when a section contains no table at all.
	BodyNoTable = "No details provided in a table format."

	// BodyEmptyTable is used when a section's table yielded no records.
	BodyEmptyTable = "No items found in the table for this release."
)

// newReleasePhrase marks first-time module releases wherever it appears in
// a title or body.
const newReleasePhrase = "new module release"

// DateUnknown is the terminal fallback when neither the row nor the
// section heading carries a usable date. It never parses, so such records
// get QuarterUnknown and sort after all dated records.
const DateUnknown = "Unknown"

// headerLabels are first-cell values that identify residual header rows.
var headerLabels = []string{
	"type of release change",
	"type of release",
	"release change",
}

// metadataPhrases identify legend rows that survived header filtering.
// Matched as substrings of the first two cells, case-insensitively.
var metadataPhrases = []string{
	"type of release change",
	"service impacted",
	"jira ticket id",
	"jira ticket",
	"ticket id",
}

// MapStats counts the non-fatal degradations encountered while mapping one
// or more sections.
type MapStats struct {
	// SkippedRows is the number of rows dropped for being structurally
	// incompatible with every known schema.
	SkippedRows int

	// HeaderRows is the number of residual header and legend rows dropped.
	HeaderRows int

	// DateFallbacks is the number of rows whose date cell could not be
	// parsed and fell back to the section heading's date.
	DateFallbacks int

	// Placeholders is the number of placeholder records synthesized for
	// sections without usable tabular data.
	Placeholders int
}

// Add accumulates counts from another MapStats.
func (s *MapStats) Add(other MapStats) {
	s.SkippedRows += other.SkippedRows
	s.HeaderRows += other.HeaderRows
	s.DateFallbacks += other.DateFallbacks
	s.Placeholders += other.Placeholders
}

// Mapper converts sections into release records. All matching patterns are
// fields of the Mapper value, so independent invocations share no state.
type Mapper struct {
	moduleName *regexp.Regexp
}

// NewMapper returns a Mapper with the default module naming convention
// (terraform-prefixed tokens).
func NewMapper() *Mapper {
	return &Mapper{
		moduleName: regexp.MustCompile(`terraform-[a-zA-Z0-9_-]+`),
	}
}

// MapSections maps every section to records, in document order.
func (m *Mapper) MapSections(sections []confluence.Section) ([]model.ReleaseRecord, MapStats) {
	records := make([]model.ReleaseRecord, 0)
	var stats MapStats

	for _, sec := range sections {
		recs, s := m.MapSection(sec)
		records = append(records, recs...)
		stats.Add(s)
	}

	return records, stats
}

// MapSection maps one section's table rows to records. A section whose
// table yields nothing — or that has no table — produces a single
// placeholder record, provided its heading title is non-empty. A section
// with neither usable rows nor a heading title produces nothing.
func (m *Mapper) MapSection(sec confluence.Section) ([]model.ReleaseRecord, MapStats) {
	var stats MapStats
	category := Classify(sec.Title)

	if sec.Table == nil {
		if sec.Title == "" {
			return nil, stats
		}
		stats.Placeholders++
		return []model.ReleaseRecord{m.placeholder(sec, category, BodyNoTable)}, stats
	}

	records := make([]model.ReleaseRecord, 0)
	for _, row := range sec.Table.Rows {
		if isHeaderRow(row) || isMetadataRow(row) {
			stats.HeaderRows++
			continue
		}
		if DetectSchema(row) == SchemaUnknown {
			stats.SkippedRows++
			continue
		}

		rec, fellBack := m.mapRow(row, sec, category)
		if rec.Title == "" && rec.Body == "" {
			continue
		}
		if fellBack {
			stats.DateFallbacks++
		}
		records = append(records, rec)
	}

	if len(records) == 0 && sec.Title != "" {
		stats.Placeholders++
		return []model.ReleaseRecord{m.placeholder(sec, category, BodyEmptyTable)}, stats
	}

	return records, stats
}

// mapRow maps a seven-column row positionally onto a record. The second
// return value reports whether the row's date cell was unusable and the
// heading date was substituted.
func (m *Mapper) mapRow(row []confluence.TableCell, sec confluence.Section, category model.Category) (model.ReleaseRecord, bool) {
	title := row[colTitle].Text
	body := row[colBody].Text

	rec := model.ReleaseRecord{
		Title:      title,
		Body:       body,
		ModuleName: m.ExtractModuleName(row[colModuleName].Text),
		Category:   category,
	}

	if containsPhrase(title, newReleasePhrase) || containsPhrase(body, newReleasePhrase) {
		rec.NewRelease = true
		rec.Category = model.CategoryNewRelease
	}

	date, fellBack := resolveDate(row[colDate].Text, sec.Date)
	rec.Date = date
	return rec, fellBack
}

// placeholder synthesizes the stand-in record for a section without usable
// tabular data. Placeholders are never new releases unless the heading
// title itself carries the trigger phrase.
func (m *Mapper) placeholder(sec confluence.Section, category model.Category, body string) model.ReleaseRecord {
	date := sec.Date
	if date == "" {
		date = DateUnknown
	}
	rec := model.ReleaseRecord{
		Title:    sec.Title,
		Body:     body,
		Category: category,
		Date:     date,
	}
	if containsPhrase(sec.Title, newReleasePhrase) {
		rec.NewRelease = true
		rec.Category = model.CategoryNewRelease
	}
	return rec
}

// ExtractModuleName returns the first module-name token in text, or empty
// when the text follows no known naming convention.
func (m *Mapper) ExtractModuleName(text string) string {
	return m.moduleName.FindString(text)
}

// isHeaderRow reports whether the row's first cell is a known header label.
func isHeaderRow(row []confluence.TableCell) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0].Text))
	for _, label := range headerLabels {
		if first == label {
			return true
		}
	}
	return false
}

// isMetadataRow reports whether either of the row's first two cells
// contains a metadata phrase. These are residual legend rows, not data.
func isMetadataRow(row []confluence.TableCell) bool {
	if len(row) < 2 {
		return false
	}
	first := strings.ToLower(row[0].Text)
	second := strings.ToLower(row[1].Text)
	for _, phrase := range metadataPhrases {
		if strings.Contains(first, phrase) || strings.Contains(second, phrase) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether s contains phrase, case-insensitively.
func containsPhrase(s, phrase string) bool {
	return strings.Contains(strings.ToLower(s), phrase)
}

// resolveDate validates a date cell. A trailing time component is stripped
// before validation; an unparseable cell falls back to the heading date,
// and an empty heading date falls back to DateUnknown.
func resolveDate(cell, headingDate string) (string, bool) {
	d := cell
	if i := strings.IndexByte(d, 'T'); i >= 0 {
		d = d[:i]
	}
	if _, err := time.Parse("2006-01-02", d); err == nil {
		return d, false
	}
	if headingDate == "" {
		return DateUnknown, true
	}
	return headingDate, true
}
