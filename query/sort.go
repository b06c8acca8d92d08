package query

import (
	"sort"

	"github.com/openhpc/testview/model"
)

// Sort returns records ordered by state. With no column the input order is
// kept. Equal keys keep their input order in both directions.
func Sort(records []model.TestRecord, state model.SortState) []model.TestRecord {
	sorted := make([]model.TestRecord, len(records))
	copy(sorted, records)

	if state.Column == model.SortNone {
		return sorted
	}

	desc := state.Direction == model.Descending
	sort.SliceStable(sorted, func(i, j int) bool {
		a := sortKey(sorted[i], state.Column)
		b := sortKey(sorted[j], state.Column)
		if desc {
			return a > b
		}
		return a < b
	})

	return sorted
}

func sortKey(record model.TestRecord, column model.SortColumn) string {
	switch column {
	case model.SortStatus:
		return string(record.Status)
	case model.SortDate:
		// Fixed-width timestamps order chronologically as strings
		return record.Timestamp
	default:
		return record.Identifier
	}
}
