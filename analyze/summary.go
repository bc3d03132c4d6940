package analyze

import (
	"sort"
	"strings"

	"github.com/tsawler/relnotes/model"
)

// DefaultTopModules is the number of most-active modules a Summary carries.
const DefaultTopModules = 20

// Summarize computes aggregate statistics over a record collection. The
// topModules argument caps the most-active-modules list; values < 1 use
// DefaultTopModules.
func Summarize(recs []model.ReleaseRecord, topModules int) model.Summary {
	if topModules < 1 {
		topModules = DefaultTopModules
	}

	s := model.Summary{
		TotalReleases: len(recs),
		Categories:    make(map[model.Category]int),
		Quarters:      make(map[string]int),
	}

	moduleCounts := make(map[string]int)
	for i := range recs {
		rec := &recs[i]
		s.Categories[rec.Category]++
		if rec.Quarter != "" {
			s.Quarters[rec.Quarter]++
		}
		if rec.ModuleName != "" {
			moduleCounts[rec.ModuleName]++
		}
		if rec.NewRelease {
			s.NewReleases++
		}
	}

	s.TotalModules = len(moduleCounts)
	s.TotalQuarters = len(s.Quarters)

	modules := make([]model.ModuleCount, 0, len(moduleCounts))
	for name, count := range moduleCounts {
		modules = append(modules, model.ModuleCount{ModuleName: name, Count: count})
	}
	sort.SliceStable(modules, func(i, j int) bool {
		if modules[i].Count != modules[j].Count {
			return modules[i].Count > modules[j].Count
		}
		return modules[i].ModuleName < modules[j].ModuleName
	})
	if len(modules) > topModules {
		modules = modules[:topModules]
	}
	s.TopModules = modules

	return s
}

// Filter selects records by exact field match. An empty (or "all")
// constraint matches everything.
type Filter struct {
	Category string
	Quarter  string
	Module   string
}

// matches reports whether a record satisfies every constraint.
func (f Filter) matches(rec *model.ReleaseRecord) bool {
	if !constraintMatches(f.Category, string(rec.Category)) {
		return false
	}
	if !constraintMatches(f.Quarter, rec.Quarter) {
		return false
	}
	return constraintMatches(f.Module, rec.ModuleName)
}

func constraintMatches(constraint, value string) bool {
	return constraint == "" || constraint == "all" || constraint == value
}

// FilterRecords returns the records satisfying the filter, in input order.
// The result is a fresh slice; the input is never mutated.
func FilterRecords(recs []model.ReleaseRecord, f Filter) []model.ReleaseRecord {
	out := make([]model.ReleaseRecord, 0)
	for i := range recs {
		if f.matches(&recs[i]) {
			out = append(out, recs[i])
		}
	}
	return out
}

// Search returns records whose title or body contains the query,
// case-insensitively, in input order. An empty query matches nothing.
func Search(recs []model.ReleaseRecord, query string) []model.ReleaseRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	out := make([]model.ReleaseRecord, 0)
	for i := range recs {
		if strings.Contains(strings.ToLower(recs[i].Title), q) ||
			strings.Contains(strings.ToLower(recs[i].Body), q) {
			out = append(out, recs[i])
		}
	}
	return out
}
