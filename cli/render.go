package cli

// This file contains the render command, which applies a view to the report
// page itself.

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/session"
)

func (a *App) render(ctx *cli.Context) error {
	filter, sort, err := viewState(ctx)
	if err != nil {
		return err
	}

	loaded, err := a.loadReport(ctx)
	if err != nil {
		return err
	}

	engine := session.New(a.logger, loaded.records, loaded.table,
		session.WithFilter(filter),
		session.WithSort(sort),
	)
	defer engine.Close()

	engine.Start()

	// Without filters or sorting the page keeps its rows and pass rate as
	// generated.
	if filter.Active() || sort.Column != model.SortNone {
		loaded.table.MarkSort(sort)
		view := engine.Refresh()
		a.logger.Info().
			Int("records", len(loaded.records)).
			Int("shown", len(view.Records)).
			Int("pass_rate", view.Summary.PassRate).
			Msg("Rendered report")
	} else {
		a.logger.Info().
			Int("records", len(loaded.records)).
			Msg("Seeded report")
	}

	output := ctx.String("output")
	if output == "" {
		if err := loaded.doc.Write(a.stdout); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}
	return loaded.doc.WriteFile(output)
}
