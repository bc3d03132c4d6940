package model

// Category classifies a release record. The value set is a fixed contract
// with downstream consumers; values are inferred by the pipeline and never
// user-supplied directly.
type Category string

const (
	CategoryBugFix      Category = "Bug Fix"
	CategoryEnhancement Category = "Enhancement"
	CategoryNewFeature  Category = "New Feature"
	CategoryNewRelease  Category = "New Release"
	CategoryOther       Category = "Other"
)

// Categories returns the complete category value set in display order.
func Categories() []Category {
	return []Category{
		CategoryBugFix,
		CategoryEnhancement,
		CategoryNewFeature,
		CategoryNewRelease,
		CategoryOther,
	}
}

// Valid reports whether c is one of the defined category values.
func (c Category) Valid() bool {
	switch c {
	case CategoryBugFix, CategoryEnhancement, CategoryNewFeature,
		CategoryNewRelease, CategoryOther:
		return true
	}
	return false
}

// ReleaseRecord is a single normalized release-note entry.
//
// Records are created once during parsing (or synthesized as placeholders
// for sections without usable tabular data), pass through normalization and
// quarter assignment exactly once, and are immutable thereafter.
type ReleaseRecord struct {
	// Title is a short label. Defaults to "Untitled" after normalization.
	Title string `json:"Title"`

	// Body is the descriptive text. Defaults to "No description provided".
	Body string `json:"Body"`

	// ModuleName is extracted from cell content by a naming-convention
	// pattern (e.g. "terraform-aws-vpc"). May be empty.
	ModuleName string `json:"ModuleName"`

	// Category is inferred from keyword signals in the heading or row text.
	Category Category `json:"Category"`

	// NewRelease is true when the record represents a first-time module
	// release. It conventionally co-occurs with CategoryNewRelease but is
	// tracked independently.
	NewRelease bool `json:"NewRelease"`

	// Date is an ISO-8601-ish calendar date string. Falls back to the
	// section heading's date when the row date cannot be parsed.
	Date string `json:"Date"`

	// Quarter is a derived label of the form "2024 Q1 (Jan–Mar)", or
	// "Unknown" when Date cannot be parsed.
	Quarter string `json:"Quarter,omitempty"`
}
