// Package analyze derives reporting aggregates from normalized release
// records. It reads records but never mutates them.
package analyze

import (
	"sort"
	"strconv"

	"github.com/tsawler/relnotes/model"
)

// Inclusive lower bounds for flagging a module as frequently changed.
const (
	DefaultQuarterThreshold = 2
	DefaultYearThreshold    = 3
)

// ModuleChanges groups records by (module, quarter) and (module, year) and
// returns the groups meeting the default thresholds. See
// ModuleChangesWithThresholds.
func ModuleChanges(recs []model.ReleaseRecord) (quarterly, yearly []model.FrequentChangeEntry) {
	return ModuleChangesWithThresholds(recs, DefaultQuarterThreshold, DefaultYearThreshold)
}

// ModuleChangesWithThresholds flags modules whose change count within a
// quarter or a year meets the given inclusive thresholds. Records with an
// empty module name are excluded entirely. Both result collections are
// ordered by descending change count, tie-broken by ascending module name;
// changes within an entry keep the input (chronological) order.
func ModuleChangesWithThresholds(recs []model.ReleaseRecord, quarterThreshold, yearThreshold int) (quarterly, yearly []model.FrequentChangeEntry) {
	type key struct {
		module string
		period string
	}

	byQuarter := make(map[key][]model.Change)
	byYear := make(map[key][]model.Change)

	for i := range recs {
		rec := &recs[i]
		if rec.ModuleName == "" {
			continue
		}

		change := model.Change{
			Title:    rec.Title,
			Category: rec.Category,
			Date:     rec.Date,
		}

		qk := key{module: rec.ModuleName, period: rec.Quarter}
		byQuarter[qk] = append(byQuarter[qk], change)

		if year := recordYear(rec); year != "" {
			yk := key{module: rec.ModuleName, period: year}
			byYear[yk] = append(byYear[yk], change)
		}
	}

	collect := func(groups map[key][]model.Change, threshold int) []model.FrequentChangeEntry {
		entries := make([]model.FrequentChangeEntry, 0)
		for k, changes := range groups {
			if len(changes) < threshold {
				continue
			}
			entries = append(entries, model.FrequentChangeEntry{
				ModuleName:  k.module,
				Period:      k.period,
				ChangeCount: len(changes),
				Changes:     changes,
			})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].ChangeCount != entries[j].ChangeCount {
				return entries[i].ChangeCount > entries[j].ChangeCount
			}
			if entries[i].ModuleName != entries[j].ModuleName {
				return entries[i].ModuleName < entries[j].ModuleName
			}
			return entries[i].Period < entries[j].Period
		})
		return entries
	}

	return collect(byQuarter, quarterThreshold), collect(byYear, yearThreshold)
}

// recordYear extracts the year label for yearly grouping: from the quarter
// label when it carries one, else from the date. Empty when neither does.
func recordYear(rec *model.ReleaseRecord) string {
	if y, _, ok := parseQuarterLabel(rec.Quarter); ok {
		return strconv.Itoa(y)
	}
	if len(rec.Date) >= 4 && allDigits(rec.Date[:4]) {
		return rec.Date[:4]
	}
	return ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
