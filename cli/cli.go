package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "testview"

type App struct {
	logger zerolog.Logger
	cli    *cli.App
	stdin  io.Reader
	stdout io.Writer
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		cli: &cli.App{
			Name:  AppName,
			Usage: "Filter, sort and summarize OpenHPC test result reports",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "verbose",
					Usage:   "Enable verbose (debug) logging",
					EnvVars: []string{"TESTVIEW_VERBOSE"},
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:      "list",
		Usage:     "List the test runs of a report",
		ArgsUsage: "<report.html|report-dir>",
		Action:    app.list,
		Flags: append(viewFlags(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Limit number of rows printed (0 prints all)",
			},
			&cli.BoolFlag{
				Name:  "links",
				Usage: "Print a command to open each run's link",
			},
		),
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:      "options",
		Usage:     "Show the values each filter can take",
		ArgsUsage: "<report.html|report-dir>",
		Action:    app.options,
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Apply filters and sorting to a report and write the resulting page",
		ArgsUsage: "<report.html|report-dir>",
		Action:    app.render,
		Flags: append(viewFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (default: stdout)",
			},
		),
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export the filtered and sorted test runs",
		ArgsUsage: "<report.html|report-dir>",
		Action:    app.export,
		Flags: append(viewFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (json or yaml)",
				Value:   formatJSON,
				EnvVars: []string{"TESTVIEW_FORMAT"},
			},
		),
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Interactively filter and sort a report",
		ArgsUsage: "<report.html|report-dir>",
		Action:    app.browse,
		Flags:     viewFlags(),
		Description: `Reads one command per line from stdin and prints the view after each one.

Commands:
  filter <key> <value>   Set a filter (distribution, provisioner, rms, status,
                         architecture, network, compiler)
  clear [key]            Clear one filter, or all of them
  search <text>          Search run names (applied after a short pause)
  sort <column>          Sort by test, status or date; repeat to reverse
  open <n>               Print a command to open the n-th run's link
  show                   Print the current view again
  quit                   Leave`,
	})
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		if len(commit) > 8 {
			commit = commit[:8]
		}
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	}
}
