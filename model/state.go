package model

// FilterKey names one of the fixed filter criteria.
type FilterKey string

const (
	FilterDistribution FilterKey = "distribution"
	FilterProvisioner  FilterKey = "provisioner"
	FilterRMS          FilterKey = "rms"
	FilterStatus       FilterKey = "status"
	FilterArchitecture FilterKey = "architecture"
	FilterNetwork      FilterKey = "network"
	FilterCompiler     FilterKey = "compiler"
	FilterSearch       FilterKey = "search"
)

// FilterKeys lists every filter key in a stable order.
var FilterKeys = []FilterKey{
	FilterDistribution,
	FilterProvisioner,
	FilterRMS,
	FilterStatus,
	FilterArchitecture,
	FilterNetwork,
	FilterCompiler,
	FilterSearch,
}

// ConfigFilterKeys lists the keys that constrain a configuration field.
var ConfigFilterKeys = []FilterKey{
	FilterDistribution,
	FilterProvisioner,
	FilterRMS,
	FilterArchitecture,
	FilterNetwork,
	FilterCompiler,
}

// Valid reports whether k is one of the fixed filter keys.
func (k FilterKey) Valid() bool {
	for _, key := range FilterKeys {
		if key == k {
			return true
		}
	}
	return false
}

// ConfigField returns the configuration value k constrains, and false for
// keys that do not map to a configuration field (status, search).
func (k FilterKey) ConfigField(c TestConfiguration) (string, bool) {
	switch k {
	case FilterDistribution:
		return c.Distribution, true
	case FilterProvisioner:
		return c.Provisioner, true
	case FilterRMS:
		return c.RMS, true
	case FilterArchitecture:
		return c.Architecture, true
	case FilterNetwork:
		return c.Network, true
	case FilterCompiler:
		return c.Compiler, true
	}
	return "", false
}

// FilterState holds one value per filter key. An empty value means the key
// does not constrain the result.
type FilterState struct {
	values map[FilterKey]string
}

// NewFilterState returns a state with no active constraint.
func NewFilterState() FilterState {
	return FilterState{values: make(map[FilterKey]string, len(FilterKeys))}
}

// Get returns the value for key, or "" when unset.
func (s FilterState) Get(key FilterKey) string {
	return s.values[key]
}

// With returns a copy of s with key set to value. Unknown keys leave the
// state unchanged.
func (s FilterState) With(key FilterKey, value string) FilterState {
	if !key.Valid() {
		return s
	}
	next := NewFilterState()
	for k, v := range s.values {
		next.values[k] = v
	}
	if value == "" {
		delete(next.values, key)
	} else {
		next.values[key] = value
	}
	return next
}

// Active reports whether any key carries a constraint.
func (s FilterState) Active() bool {
	return len(s.values) > 0
}

// SortColumn is the sort-key token carried by a sortable header.
type SortColumn string

const (
	SortNone   SortColumn = ""
	SortTest   SortColumn = "test"
	SortStatus SortColumn = "status"
	SortDate   SortColumn = "date"
)

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState selects the ordering of the view. A zero value keeps the original
// document order.
type SortState struct {
	Column    SortColumn
	Direction Direction
}

// Toggle applies a header click: the active column flips direction, any other
// column becomes active in ascending order.
func (s SortState) Toggle(column SortColumn) SortState {
	if s.Column == column {
		if s.Direction == Descending {
			return SortState{Column: column, Direction: Ascending}
		}
		return SortState{Column: column, Direction: Descending}
	}
	return SortState{Column: column, Direction: Ascending}
}
