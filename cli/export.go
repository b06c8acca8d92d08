package cli

// This file contains the export command for dumping the visible runs.

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/session"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type exportDocument struct {
	Source  string             `json:"source" yaml:"source"`
	Summary model.Summary      `json:"summary" yaml:"summary"`
	Runs    []model.TestRecord `json:"runs" yaml:"runs"`
}

func (a *App) export(ctx *cli.Context) error {
	format := ctx.String("format")
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("unknown format %q (valid: json, yaml)", format)
	}

	filter, sort, err := viewState(ctx)
	if err != nil {
		return err
	}

	loaded, err := a.loadReport(ctx)
	if err != nil {
		return err
	}

	view := session.Compute(loaded.records, filter, sort)
	return writeExport(a.stdout, format, exportDocument{
		Source:  loaded.doc.Path,
		Summary: view.Summary,
		Runs:    view.Records,
	})
}

func writeExport(w io.Writer, format string, doc exportDocument) error {
	if doc.Runs == nil {
		doc.Runs = []model.TestRecord{}
	}

	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
