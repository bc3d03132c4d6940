// Package model provides the data types shared by the release-note
// extraction pipeline and its consumers.
//
// This package defines the user-facing structures that every stage of the
// pipeline produces or consumes. Parsing, normalization, and analysis all
// ultimately emit these types, making them the primary API for downstream
// reporting and export layers.
//
// # Records
//
// The [ReleaseRecord] type represents a single normalized release-note
// entry. After the pipeline completes, every record carries a non-empty
// Title, Body, Category, Date, and Quarter:
//
//	for _, rec := range records {
//	    fmt.Printf("%s [%s] %s\n", rec.Date, rec.Category, rec.Title)
//	}
//
// # Analysis
//
// The [FrequentChangeEntry] and [Summary] types are derived aggregates
// produced by the analyze package. They are never persisted and never fed
// back into the pipeline.
//
// Consumers must treat the field names and the [Category] value set as a
// fixed contract, but must not assume any particular in-memory
// representation beyond that.
package model
