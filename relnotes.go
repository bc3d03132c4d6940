// Package relnotes provides a fluent API for extracting normalized release
// records from Confluence release-note exports, and for deriving
// time-bucketed analytics over those records.
//
// Basic usage:
//
//	records, warnings, err := relnotes.ParseFile("report_confluence.json").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", relnotes.FormatWarnings(warnings))
//	}
//
// With options:
//
//	records, _, err := relnotes.Parse(data).
//	    WithProgress(func(stage string, done, total int) {
//	        log.Printf("%s: %d/%d", stage, done, total)
//	    }).
//	    Records()
//
// The accepted payload shapes are a JSON export object carrying
// body.storage.value, a JSON array of pre-structured record objects, or a
// raw markup document. Detection is automatic; see the payload package.
//
// Each invocation is a pure, stateless transformation of one payload into
// one record collection, so independent calls are safe to run concurrently.
package relnotes

import (
	"github.com/tsawler/relnotes/model"
)

// Parse creates an Extractor over an in-memory payload.
//
// Example:
//
//	records, warnings, err := relnotes.Parse(data).Records()
func Parse(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		options: defaultOptions(),
	}
}

// ParseFile creates an Extractor that reads the payload from a file when a
// terminal operation runs.
//
// Example:
//
//	records, warnings, err := relnotes.ParseFile("export.json").Records()
func ParseFile(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over a markup document that has
// already been unwrapped from its export envelope.
func FromDocument(markup string) *Extractor {
	return &Extractor{
		data:    []byte(markup),
		options: defaultOptions(),
	}
}

// FromRecords creates an Extractor over an already-parsed record
// collection. The records still pass through normalization and quarter
// assignment, which is how pre-structured JSON array payloads are handled
// once decoded by the caller.
func FromRecords(recs []model.ReleaseRecord) *Extractor {
	copied := make([]model.ReleaseRecord, len(recs))
	copy(copied, recs)
	return &Extractor{
		records: copied,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords wraps a terminal operation returning (T, []Warning, error)
// and panics if the error is non-nil. Warnings are discarded.
//
// Example:
//
//	records := relnotes.MustRecords(relnotes.Parse(data).Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
