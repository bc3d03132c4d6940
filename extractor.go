package relnotes

import (
	"fmt"
	"os"
	"time"

	"github.com/tsawler/relnotes/analyze"
	"github.com/tsawler/relnotes/confluence"
	"github.com/tsawler/relnotes/model"
	"github.com/tsawler/relnotes/payload"
	"github.com/tsawler/relnotes/records"
)

// Extractor provides a fluent interface for running the extraction
// pipeline. Each configuration method returns a new Extractor instance,
// making chains safe to fork and reuse.
type Extractor struct {
	// Source: exactly one of these is set.
	filename string
	data     []byte
	records  []model.ReleaseRecord

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with copied options. Chain methods
// return the copy, leaving the receiver untouched.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		records:  e.records,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// Now fixes the processing date used when a record carries no date of its
// own. Without it, the wall clock at terminal-operation time is used.
func (e *Extractor) Now(t time.Time) *Extractor {
	n := e.clone()
	n.options.now = t
	return n
}

// WithProgress installs a progress callback invoked as document sections
// are processed.
func (e *Extractor) WithProgress(fn ProgressFunc) *Extractor {
	n := e.clone()
	n.options.progress = fn
	return n
}

// QuarterThreshold overrides the inclusive lower bound for flagging a
// module as frequently changed within one quarter.
func (e *Extractor) QuarterThreshold(threshold int) *Extractor {
	n := e.clone()
	n.options.quarterThreshold = threshold
	return n
}

// YearThreshold overrides the inclusive lower bound for flagging a module
// as frequently changed within one year.
func (e *Extractor) YearThreshold(threshold int) *Extractor {
	n := e.clone()
	n.options.yearThreshold = threshold
	return n
}

// TopModules caps the most-active-modules list carried by Summary.
func (e *Extractor) TopModules(limit int) *Extractor {
	n := e.clone()
	n.options.topModules = limit
	return n
}

// ============================================================================
// Terminal Operations (execute the pipeline and return results)
// ============================================================================

// Records runs the full pipeline and returns the normalized, quarter-
// labeled record collection, sorted ascending by date with unparseable
// dates last.
//
// Warnings indicate non-fatal issues where extraction succeeded but the
// result is less complete than a well-formed document would produce
// (skipped rows, placeholder records, date fallbacks).
func (e *Extractor) Records() ([]model.ReleaseRecord, []Warning, error) {
	return e.run()
}

// FrequentChanges runs the pipeline and returns the quarterly and yearly
// frequent-change collections derived from the records.
func (e *Extractor) FrequentChanges() (quarterly, yearly []model.FrequentChangeEntry, warnings []Warning, err error) {
	recs, warnings, err := e.run()
	if err != nil {
		return nil, nil, warnings, err
	}

	qt := e.options.quarterThreshold
	if qt < 1 {
		qt = analyze.DefaultQuarterThreshold
	}
	yt := e.options.yearThreshold
	if yt < 1 {
		yt = analyze.DefaultYearThreshold
	}

	quarterly, yearly = analyze.ModuleChangesWithThresholds(recs, qt, yt)
	return quarterly, yearly, warnings, nil
}

// Summary runs the pipeline and returns aggregate statistics over the
// records.
func (e *Extractor) Summary() (model.Summary, []Warning, error) {
	recs, warnings, err := e.run()
	if err != nil {
		return model.Summary{}, warnings, err
	}
	return analyze.Summarize(recs, e.options.topModules), warnings, nil
}

// run executes the pipeline: payload decoding, section parsing and row
// mapping, normalization, quarter assignment, and chronological sort.
func (e *Extractor) run() ([]model.ReleaseRecord, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	var warnings []Warning
	recs := e.records

	if recs == nil {
		data := e.data
		if data == nil && e.filename != "" {
			var err error
			data, err = os.ReadFile(e.filename)
			if err != nil {
				return nil, nil, fmt.Errorf("reading payload file: %w", err)
			}
		}

		p, err := payload.Decode(data)
		if err != nil {
			return nil, nil, err
		}

		switch p.Shape {
		case payload.ShapeRecordArray:
			recs = records.FromMaps(p.Records)

		case payload.ShapeStorageDocument, payload.ShapeRawMarkup:
			recs, warnings, err = e.parseDocument(p.Document)
			if err != nil {
				return nil, nil, err
			}

		default:
			recs = make([]model.ReleaseRecord, 0)
			warnings = append(warnings, Warning{
				Code:    WarnEmptyPayload,
				Message: "payload decoded to no content",
			})
		}
	}

	now := e.options.now
	if now.IsZero() {
		now = time.Now()
	}

	recs = records.Normalize(recs, now)
	recs = records.AssignQuarters(recs)

	if n := records.UnknownQuarters(recs); n > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnUnknownQuarters,
			Message: fmt.Sprintf("%d record(s) have no parseable date", n),
		})
	}

	return recs, warnings, nil
}

// parseDocument parses a markup document into records, reporting mapper
// degradations as warnings.
func (e *Extractor) parseDocument(markup string) ([]model.ReleaseRecord, []Warning, error) {
	sections, err := confluence.ParseDocument(markup)
	if err != nil {
		return nil, nil, err
	}

	mapper := records.NewMapper()
	recs := make([]model.ReleaseRecord, 0)
	var stats records.MapStats

	for i, sec := range sections {
		secRecs, s := mapper.MapSection(sec)
		recs = append(recs, secRecs...)
		stats.Add(s)
		if e.options.progress != nil {
			e.options.progress("sections", i+1, len(sections))
		}
	}

	var warnings []Warning
	if stats.SkippedRows > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnSkippedRows,
			Message: fmt.Sprintf("%d row(s) skipped: too few cells for any known layout", stats.SkippedRows),
		})
	}
	if stats.DateFallbacks > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnDateFallbacks,
			Message: fmt.Sprintf("%d row(s) fell back to the section heading date", stats.DateFallbacks),
		})
	}
	if stats.Placeholders > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnPlaceholders,
			Message: fmt.Sprintf("%d section(s) produced placeholder records", stats.Placeholders),
		})
	}

	return recs, warnings, nil
}
