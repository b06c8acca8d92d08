package cli

// This file contains the list command for displaying the runs of a report.

import (
	"github.com/urfave/cli/v2"

	"github.com/openhpc/testview/session"
)

func (a *App) list(ctx *cli.Context) error {
	filter, sort, err := viewState(ctx)
	if err != nil {
		return err
	}

	loaded, err := a.loadReport(ctx)
	if err != nil {
		return err
	}

	renderer := newTextRenderer(a.stdout)
	renderer.limit = ctx.Int("limit")
	renderer.links = ctx.Bool("links")

	engine := session.New(a.logger, loaded.records, renderer,
		session.WithFilter(filter),
		session.WithSort(sort),
	)
	defer engine.Close()

	engine.Refresh()
	return nil
}
