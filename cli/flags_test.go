package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhpc/testview/model"
)

func TestBuildFilterState(t *testing.T) {
	tests := []struct {
		name    string
		values  map[model.FilterKey]string
		want    map[model.FilterKey]string
		wantErr bool
	}{
		{
			name:   "empty",
			values: map[model.FilterKey]string{},
			want:   map[model.FilterKey]string{},
		},
		{
			name: "search is lower-cased",
			values: map[model.FilterKey]string{
				model.FilterSearch:   "Rocky9-LATEST",
				model.FilterCompiler: "INTEL",
			},
			want: map[model.FilterKey]string{
				model.FilterSearch:   "rocky9-latest",
				model.FilterCompiler: "INTEL",
			},
		},
		{
			name:   "valid status",
			values: map[model.FilterKey]string{model.FilterStatus: "warning"},
			want:   map[model.FilterKey]string{model.FilterStatus: "warning"},
		},
		{
			name:    "invalid status",
			values:  map[model.FilterKey]string{model.FilterStatus: "passed"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := buildFilterState(tt.values)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, key := range model.FilterKeys {
				assert.Equal(t, tt.want[key], state.Get(key), key)
			}
		})
	}
}

func TestBuildSortState(t *testing.T) {
	state, err := buildSortState("", true)
	require.NoError(t, err)
	assert.Equal(t, model.SortState{}, state)

	state, err = buildSortState("Date", false)
	require.NoError(t, err)
	assert.Equal(t, model.SortState{Column: model.SortDate, Direction: model.Ascending}, state)

	state, err = buildSortState("status", true)
	require.NoError(t, err)
	assert.Equal(t, model.SortState{Column: model.SortStatus, Direction: model.Descending}, state)

	_, err = buildSortState("runtime", false)
	require.Error(t, err)
}

func TestParseFilterKey(t *testing.T) {
	key, err := parseFilterKey("RMS")
	require.NoError(t, err)
	assert.Equal(t, model.FilterRMS, key)

	_, err = parseFilterKey("gpu")
	require.Error(t, err)
}

func TestFilterFlags(t *testing.T) {
	flags := FilterFlags()
	require.Len(t, flags, len(model.FilterKeys))
	for i, key := range model.FilterKeys {
		assert.Equal(t, []string{string(key)}, flags[i].Names())
	}
	assert.Len(t, viewFlags(), len(model.FilterKeys)+2)
}
