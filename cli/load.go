package cli

// This file contains loading of the report named on the command line.

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/report"
)

type loadedReport struct {
	doc     *report.Document
	table   *report.Table
	records []model.TestRecord
}

func (a *App) loadReport(ctx *cli.Context) (*loadedReport, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one report path, got %d", ctx.NArg())
	}

	doc, err := report.Load(a.logger, ctx.Args().First())
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	table, records := report.Extract(a.logger, doc)
	if len(records) == 0 {
		a.logger.Warn().Str("path", doc.Path).Msg("Report contains no test runs")
	}

	return &loadedReport{doc: doc, table: table, records: records}, nil
}
