package relnotes

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal degradation encountered
// during extraction.
type WarningCode int

const (
	// WarnSkippedRows reports table rows dropped for being structurally
	// incompatible with every known schema (too few cells).
	WarnSkippedRows WarningCode = iota

	// WarnDateFallbacks reports rows whose date cell could not be parsed
	// and fell back to the section heading's date.
	WarnDateFallbacks

	// WarnPlaceholders reports sections that produced placeholder records
	// because no usable tabular data was found.
	WarnPlaceholders

	// WarnUnknownQuarters reports records whose date could not be parsed
	// at all, leaving their quarter label "Unknown".
	WarnUnknownQuarters

	// WarnEmptyPayload reports a payload that decoded to nothing.
	WarnEmptyPayload
)

// String returns the code name.
func (c WarningCode) String() string {
	switch c {
	case WarnSkippedRows:
		return "SkippedRows"
	case WarnDateFallbacks:
		return "DateFallbacks"
	case WarnPlaceholders:
		return "Placeholders"
	case WarnUnknownQuarters:
		return "UnknownQuarters"
	case WarnEmptyPayload:
		return "EmptyPayload"
	default:
		return "Unknown"
	}
}

// Warning describes a non-fatal issue: extraction succeeded but the result
// is less complete than a fully well-formed document would produce.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "Code: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings renders warnings as a single semicolon-separated string,
// suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
