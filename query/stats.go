package query

import (
	"sort"
	"strings"

	"github.com/openhpc/testview/model"
)

// LatestMarker tags runs counted by CountLatest.
const LatestMarker = "LATEST"

// Summarize aggregates test case counts over records. It is used for both the
// full record set and every filtered view.
func Summarize(records []model.TestRecord) model.Summary {
	summary := model.Summary{Count: len(records)}
	for _, record := range records {
		summary.TotalPassed += record.PassedCount
		summary.TotalFailed += record.FailedCount
	}
	summary.PassRate = PassRate(summary.TotalPassed, summary.TotalFailed)
	return summary
}

// PassRate is passed*100/(passed+failed) rounded half up to an integer, or 0
// when there are no test cases.
func PassRate(passed, failed int) int {
	total := passed + failed
	if total <= 0 {
		return 0
	}
	return (passed*200 + total) / (2 * total)
}

// CountLatest counts records whose identifier carries LatestMarker.
func CountLatest(records []model.TestRecord) int {
	n := 0
	for _, record := range records {
		if strings.Contains(record.Identifier, LatestMarker) {
			n++
		}
	}
	return n
}

// Options returns, for every configuration filter key, the distinct non-empty
// values found in records, sorted ascending.
func Options(records []model.TestRecord) map[model.FilterKey][]string {
	options := make(map[model.FilterKey][]string, len(model.ConfigFilterKeys))
	for _, key := range model.ConfigFilterKeys {
		seen := make(map[string]bool)
		values := []string{}
		for _, record := range records {
			value, _ := key.ConfigField(record.Config)
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
		sort.Strings(values)
		options[key] = values
	}
	return options
}
