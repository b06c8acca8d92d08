// Package report reads test result reports rendered as HTML and applies views
// computed by the query engines back onto the document.
package report

// This file contains loading and writing of report documents.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// IndexFile is loaded when a report path names a directory.
const IndexFile = "index.html"

// Document is a parsed report page.
type Document struct {
	Root *html.Node
	Path string
}

// ResolvePath returns the report file for path, looking for IndexFile when
// path is a directory.
func ResolvePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat report: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, IndexFile)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("no %s in report directory: %w", IndexFile, err)
		}
	}
	return path, nil
}

// Load parses the report at path.
func Load(logger zerolog.Logger, path string) (*Document, error) {
	reportPath, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(reportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", reportPath, err)
	}
	doc.Path = reportPath

	logger.Debug().Str("path", reportPath).Msg("Loaded report")
	return doc, nil
}

// Parse reads a report document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

// Write renders the document to w.
func (d *Document) Write(w io.Writer) error {
	return html.Render(w, d.Root)
}

// WriteFile renders the document to path.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
