package cli

// This file contains the terminal renderer for computed views.

import (
	"fmt"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/openhpc/testview/model"
)

const identifierWidth = 64

type textStyles struct {
	header  lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	warning lipgloss.Style
	unknown lipgloss.Style
	dim     lipgloss.Style
	summary lipgloss.Style
}

func newTextStyles() textStyles {
	return textStyles{
		header:  lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		unknown: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		dim:     lipgloss.NewStyle().Faint(true),
		summary: lipgloss.NewStyle().Bold(true),
	}
}

func (s textStyles) status(status model.Status) string {
	switch status {
	case model.StatusPass:
		return s.pass.Render("✓")
	case model.StatusFail:
		return s.fail.Render("✗")
	case model.StatusWarning:
		return s.warning.Render("!")
	default:
		return s.unknown.Render("?")
	}
}

// textRenderer prints views as a table of runs followed by a summary line.
type textRenderer struct {
	w      io.Writer
	styles textStyles
	limit  int
	links  bool
}

func newTextRenderer(w io.Writer) *textRenderer {
	return &textRenderer{w: w, styles: newTextStyles()}
}

func (r *textRenderer) Render(records []model.TestRecord, summary model.Summary) {
	fmt.Fprintf(r.w, "\n%s\n\n", r.styles.header.Render(fmt.Sprintf("=== Test Runs (%d shown) ===", len(records))))

	if len(records) == 0 {
		fmt.Fprintln(r.w, "No test results match the current filters.")
	}

	shown := records
	if r.limit > 0 && r.limit < len(shown) {
		shown = shown[:r.limit]
	}

	for i, record := range shown {
		timestamp := record.Timestamp
		if timestamp == "" {
			timestamp = "-"
		}
		fmt.Fprintf(r.w, "%3d %s  %s  %-19s  passed=%d failed=%d\n",
			i+1,
			r.styles.status(record.Status),
			pad(truncate(record.Identifier, identifierWidth), identifierWidth),
			timestamp,
			record.PassedCount,
			record.FailedCount,
		)
		if r.links && record.Link != "" {
			fmt.Fprintf(r.w, "      %s\n", r.styles.dim.Render(openCommand(record.Link)))
		}
	}
	if len(shown) < len(records) {
		fmt.Fprintf(r.w, "    ... %d more\n", len(records)-len(shown))
	}

	fmt.Fprintf(r.w, "\n%s\n", r.styles.summary.Render(formatSummary(summary)))
}

func formatSummary(summary model.Summary) string {
	return fmt.Sprintf("Configurations: %d  Passed: %d  Failed: %d  Pass rate: %d%%",
		summary.Count, summary.TotalPassed, summary.TotalFailed, summary.PassRate)
}

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	if width > 1 && ansi.StringWidth(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return s
}

func pad(s string, width int) string {
	if n := width - ansi.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// openCommand returns a shell command that opens link.
func openCommand(link string) string {
	return strings.Join([]string{"xdg-open", shellescape.Quote(link)}, " ")
}
