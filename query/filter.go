// Package query holds the pure engines that turn the extracted record set into
// a view: filtering, sorting and summary statistics.
package query

import (
	"strings"

	"github.com/openhpc/testview/model"
)

// Filter returns the records that satisfy every active constraint of state,
// in input order. The input slice is not modified.
func Filter(records []model.TestRecord, state model.FilterState) []model.TestRecord {
	filtered := make([]model.TestRecord, 0, len(records))
	for _, record := range records {
		if Match(record, state) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Match reports whether a single record passes state.
func Match(record model.TestRecord, state model.FilterState) bool {
	for _, key := range model.ConfigFilterKeys {
		want := state.Get(key)
		if want == "" {
			continue
		}
		got, _ := key.ConfigField(record.Config)
		if !strings.Contains(got, want) {
			return false
		}
	}

	if status := state.Get(model.FilterStatus); status != "" && string(record.Status) != status {
		return false
	}

	// The search value is lower-cased when it is captured
	if search := state.Get(model.FilterSearch); search != "" &&
		!strings.Contains(strings.ToLower(record.Identifier), search) {
		return false
	}

	return true
}
