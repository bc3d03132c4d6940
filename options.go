package relnotes

import "time"

// ProgressFunc receives progress callbacks while a document is parsed.
// stage names the pipeline stage ("sections"); done and total count
// processed and discovered units. The pipeline itself has no other side
// channel.
type ProgressFunc func(stage string, done, total int)

// ExtractOptions holds configuration for the extraction pipeline.
type ExtractOptions struct {
	// now supplies the processing date for records missing one. Zero means
	// time.Now at terminal-operation time.
	now time.Time

	// progress, when non-nil, is invoked as sections are processed.
	progress ProgressFunc

	// Frequent-change thresholds (inclusive lower bounds).
	quarterThreshold int
	yearThreshold    int

	// topModules caps the most-active-modules list in summaries.
	topModules int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		now:              time.Time{}, // resolved at terminal operation
		progress:         nil,
		quarterThreshold: 0, // 0 means the analyzer default
		yearThreshold:    0,
		topModules:       0,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		now:              o.now,
		progress:         o.progress,
		quarterThreshold: o.quarterThreshold,
		yearThreshold:    o.yearThreshold,
		topModules:       o.topModules,
	}
}
