package analyze

import "github.com/tsawler/relnotes/model"

// QuarterGroup holds one quarter's records, in input order.
type QuarterGroup struct {
	Quarter string
	Records []model.ReleaseRecord
}

// GroupByQuarter buckets records by quarter label for export consumers.
// Groups are ordered most recent year first, ascending quarter within a
// year, with malformed labels (such as "Unknown") last.
func GroupByQuarter(recs []model.ReleaseRecord) []QuarterGroup {
	byLabel := make(map[string][]model.ReleaseRecord)
	labels := make([]string, 0)

	for i := range recs {
		label := recs[i].Quarter
		if _, seen := byLabel[label]; !seen {
			labels = append(labels, label)
		}
		byLabel[label] = append(byLabel[label], recs[i])
	}

	SortQuarterLabels(labels)

	groups := make([]QuarterGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, QuarterGroup{Quarter: label, Records: byLabel[label]})
	}
	return groups
}
