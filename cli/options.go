package cli

// This file contains the options command listing the choices of each filter.

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/query"
)

func (a *App) options(ctx *cli.Context) error {
	loaded, err := a.loadReport(ctx)
	if err != nil {
		return err
	}

	printOptions(a, query.Options(loaded.records))
	return nil
}

func printOptions(a *App, options map[model.FilterKey][]string) {
	for _, key := range model.ConfigFilterKeys {
		values := options[key]
		if len(values) == 0 {
			fmt.Fprintf(a.stdout, "%-13s (none)\n", key+":")
			continue
		}
		fmt.Fprintf(a.stdout, "%-13s %s\n", key+":", strings.Join(values, ", "))
	}
	fmt.Fprintf(a.stdout, "%-13s %s\n", "status:", "pass, fail, warning, unknown")
}
