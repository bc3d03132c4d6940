package analyze

import (
	"sort"
	"strconv"
	"strings"
)

// parseQuarterLabel splits a label like "2024 Q1 (Jan–Mar)" into its year
// and quarter number. Labels that do not follow the form report ok=false.
func parseQuarterLabel(label string) (year, quarter int, ok bool) {
	fields := strings.Fields(label)
	if len(fields) < 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}

	q := fields[1]
	if len(q) != 2 || q[0] != 'Q' || q[1] < '1' || q[1] > '4' {
		return 0, 0, false
	}

	return year, int(q[1] - '0'), true
}

// SortQuarterLabels orders quarter labels in place: most recent year first,
// ascending quarter number within a year. Malformed labels sort after all
// well-formed ones, keeping their relative order.
func SortQuarterLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		yi, qi, oki := parseQuarterLabel(labels[i])
		yj, qj, okj := parseQuarterLabel(labels[j])
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		if yi != yj {
			return yi > yj
		}
		return qi < qj
	})
}
