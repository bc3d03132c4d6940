package records

import (
	"fmt"
	"time"

	"github.com/tsawler/relnotes/model"
)

// Field defaults applied by Normalize.
const (
	DefaultTitle = "Untitled"
	DefaultBody  = "No description provided"
)

// fieldAliases maps each canonical field to its historical alternates, in
// lookup order. Only map-shaped input (pre-structured JSON arrays) can
// carry alternates; records built by the mapper always use canonical names.
var fieldAliases = map[string][]string{
	"Title":    {"Title", "Report", "Name"},
	"Body":     {"Body", "Details", "Description"},
	"Category": {"Category", "Type"},
}

// Normalize fills fixed defaults for any record field still missing after
// parsing. Every returned record has a non-empty Title, Body, Category, and
// Date. The pass is idempotent: normalizing an already-normalized
// collection is a no-op. The now argument supplies the processing date used
// when a record carries no date at all.
func Normalize(recs []model.ReleaseRecord, now time.Time) []model.ReleaseRecord {
	today := now.Format("2006-01-02")
	for i := range recs {
		if recs[i].Title == "" {
			recs[i].Title = DefaultTitle
		}
		if recs[i].Body == "" {
			recs[i].Body = DefaultBody
		}
		if recs[i].Category == "" {
			recs[i].Category = model.CategoryOther
		}
		if recs[i].Date == "" {
			recs[i].Date = today
		}
	}
	return recs
}

// FromMaps converts pre-structured record objects (payload shape b) into
// release records, resolving alternate field names. The first present
// alternate wins; missing fields are left empty for Normalize to fill.
func FromMaps(items []map[string]interface{}) []model.ReleaseRecord {
	recs := make([]model.ReleaseRecord, 0, len(items))

	for _, item := range items {
		rec := model.ReleaseRecord{
			Title:      lookupAlias(item, "Title"),
			Body:       lookupAlias(item, "Body"),
			Category:   model.Category(lookupAlias(item, "Category")),
			ModuleName: stringValue(item["ModuleName"]),
			Date:       stringValue(item["Date"]),
			Quarter:    stringValue(item["Quarter"]),
		}
		if v, ok := item["NewRelease"].(bool); ok {
			rec.NewRelease = v
		}
		recs = append(recs, rec)
	}

	return recs
}

// lookupAlias returns the first present, non-empty alternate for a
// canonical field.
func lookupAlias(item map[string]interface{}, field string) string {
	for _, name := range fieldAliases[field] {
		if v, ok := item[name]; ok {
			if s := stringValue(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringValue renders a decoded JSON value as a string. Non-string scalars
// (numbers, booleans) are formatted; nil yields empty.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
