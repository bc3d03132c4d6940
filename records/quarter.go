package records

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/relnotes/model"
)

// QuarterUnknown labels records whose date cannot be parsed.
const QuarterUnknown = "Unknown"

// dateLayouts are the accepted ISO-8601-ish forms, tried in order after a
// trailing "Z" is removed.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// monthRanges indexes quarter number (1-4) to its display range.
var monthRanges = [...]string{"", "Jan–Mar", "Apr–Jun", "Jul–Sep", "Oct–Dec"}

// ParseDate parses a record date. A trailing "Z" is tolerated. The second
// return value is false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(s, "Z"))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// QuarterLabel computes the human-readable quarter label for a date, of the
// form "2024 Q1 (Jan–Mar)". Months bucket into fixed 3-month quarters.
func QuarterLabel(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d Q%d (%s)", t.Year(), q, monthRanges[q])
}

// AssignQuarters derives every record's Quarter label and stable-sorts the
// collection ascending by parsed date. Records whose date cannot be parsed
// get QuarterUnknown and sort after all dated records, preserving their
// relative order. The returned slice is the input slice, updated in place.
func AssignQuarters(recs []model.ReleaseRecord) []model.ReleaseRecord {
	keys := make([]time.Time, len(recs))
	parsed := make([]bool, len(recs))

	for i := range recs {
		t, ok := ParseDate(recs[i].Date)
		keys[i], parsed[i] = t, ok
		if ok {
			recs[i].Quarter = QuarterLabel(t)
		} else {
			recs[i].Quarter = QuarterUnknown
		}
	}

	order := make([]int, len(recs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if parsed[i] != parsed[j] {
			return parsed[i] // unparseable dates are maximal
		}
		if !parsed[i] {
			return false
		}
		return keys[i].Before(keys[j])
	})

	sorted := make([]model.ReleaseRecord, len(recs))
	for pos, i := range order {
		sorted[pos] = recs[i]
	}
	copy(recs, sorted)
	return recs
}

// UnknownQuarters counts records labeled QuarterUnknown.
func UnknownQuarters(recs []model.ReleaseRecord) int {
	n := 0
	for i := range recs {
		if recs[i].Quarter == QuarterUnknown {
			n++
		}
	}
	return n
}
