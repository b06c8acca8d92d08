package cli

// This file contains the filter and sort flags shared by the view commands.

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/openhpc/testview/model"
)

var filterUsage = map[model.FilterKey]string{
	model.FilterDistribution: "Only runs whose distribution contains this value (e.g. almalinux9)",
	model.FilterProvisioner:  "Only runs whose provisioner contains this value (e.g. warewulf4)",
	model.FilterRMS:          "Only runs whose resource manager contains this value (e.g. slurm)",
	model.FilterStatus:       "Only runs with this status (pass, fail, warning, unknown)",
	model.FilterArchitecture: "Only runs whose architecture contains this value (e.g. aarch64)",
	model.FilterNetwork:      "Only runs whose network contains this value (e.g. infiniband)",
	model.FilterCompiler:     "Only runs whose compiler contains this value (GNU or INTEL)",
	model.FilterSearch:       "Only runs whose name contains this text (case-insensitive)",
}

// FilterFlags returns one flag per filter key.
func FilterFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(model.FilterKeys))
	for _, key := range model.FilterKeys {
		flags = append(flags, &cli.StringFlag{
			Name:     string(key),
			Usage:    filterUsage[key],
			EnvVars:  []string{"TESTVIEW_" + strings.ToUpper(string(key))},
			Category: "Filters",
		})
	}
	return flags
}

// SortFlags returns the sort column and direction flags.
func SortFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "sort",
			Aliases:  []string{"s"},
			Usage:    "Sort by test, status or date (default: report order)",
			EnvVars:  []string{"TESTVIEW_SORT"},
			Category: "Sorting",
		},
		&cli.BoolFlag{
			Name:     "desc",
			Usage:    "Sort in descending order",
			Category: "Sorting",
		},
	}
}

func viewFlags() []cli.Flag {
	return append(FilterFlags(), SortFlags()...)
}

var validStatuses = []model.Status{
	model.StatusPass,
	model.StatusFail,
	model.StatusWarning,
	model.StatusUnknown,
}

var validColumns = []model.SortColumn{
	model.SortTest,
	model.SortStatus,
	model.SortDate,
}

func parseFilterKey(s string) (model.FilterKey, error) {
	key := model.FilterKey(strings.ToLower(s))
	if !key.Valid() {
		return "", fmt.Errorf("unknown filter %q (valid: %s)", s, joinKeys(model.FilterKeys))
	}
	return key, nil
}

func parseSortColumn(s string) (model.SortColumn, error) {
	column := model.SortColumn(strings.ToLower(s))
	for _, valid := range validColumns {
		if column == valid {
			return column, nil
		}
	}
	return "", fmt.Errorf("unknown sort column %q (valid: test, status, date)", s)
}

// buildFilterState validates values and returns the state they describe.
func buildFilterState(values map[model.FilterKey]string) (model.FilterState, error) {
	state := model.NewFilterState()
	for _, key := range model.FilterKeys {
		value := values[key]
		if value == "" {
			continue
		}
		switch key {
		case model.FilterStatus:
			if !isValidStatus(value) {
				return state, fmt.Errorf("unknown status %q (valid: pass, fail, warning, unknown)", value)
			}
		case model.FilterSearch:
			value = strings.ToLower(value)
		}
		state = state.With(key, value)
	}
	return state, nil
}

func buildSortState(column string, desc bool) (model.SortState, error) {
	if column == "" {
		return model.SortState{}, nil
	}
	c, err := parseSortColumn(column)
	if err != nil {
		return model.SortState{}, err
	}
	direction := model.Ascending
	if desc {
		direction = model.Descending
	}
	return model.SortState{Column: c, Direction: direction}, nil
}

func isValidStatus(s string) bool {
	for _, status := range validStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

func joinKeys(keys []model.FilterKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

// viewState reads the filter and sort flags of ctx.
func viewState(ctx *cli.Context) (model.FilterState, model.SortState, error) {
	values := make(map[model.FilterKey]string, len(model.FilterKeys))
	for _, key := range model.FilterKeys {
		values[key] = ctx.String(string(key))
	}
	filter, err := buildFilterState(values)
	if err != nil {
		return filter, model.SortState{}, err
	}
	sort, err := buildSortState(ctx.String("sort"), ctx.Bool("desc"))
	if err != nil {
		return filter, sort, err
	}
	return filter, sort, nil
}
