// Package records maps parsed sections and rows onto release records and
// normalizes the resulting collection.
package records

import (
	"strings"

	"github.com/tsawler/relnotes/model"
)

// Classify infers a coarse category from keyword signals in a heading or
// row title. Matching is case-insensitive with fixed first-match
// precedence: enhancement/updated, then new/created, then bug/fix, else
// Other. The precedence is deliberate — "new enhancement" classifies as
// Enhancement regardless of word order in the input.
func Classify(title string) model.Category {
	l := strings.ToLower(title)
	switch {
	case strings.Contains(l, "enhancement") || strings.Contains(l, "updated"):
		return model.CategoryEnhancement
	case strings.Contains(l, "new") || strings.Contains(l, "created"):
		return model.CategoryNewFeature
	case strings.Contains(l, "bug") || strings.Contains(l, "fix"):
		return model.CategoryBugFix
	default:
		return model.CategoryOther
	}
}
