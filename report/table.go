package report

// This file contains the view adapter that applies a computed view to the
// rows, filter controls, sort headers and summary fields of a report.

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/openhpc/testview/model"
)

// Summary display targets.
const (
	TotalTestsID   = "total-tests"
	TotalRuntimeID = "total-runtime"
	PassRateID     = "pass-rate"
	LatestTestsID  = "latest-tests"
)

const (
	noResultsClass   = "no-results-row"
	noResultsMessage = "\U0001F50D No test results match the current filters."
	noResultsColumns = "6"
)

// FilterControlID returns the id of the select control for key.
func FilterControlID(key model.FilterKey) string {
	return "filter-" + string(key)
}

// Table maps records, by Position, to the rows they were extracted from.
// It is the only place that touches the document.
type Table struct {
	doc    *Document
	logger zerolog.Logger
	table  *html.Node
	tbody  *html.Node
	rows   []*html.Node
}

func (t *Table) rowCount() int {
	return len(t.rows)
}

// SeedSummary writes the full-set summary into the summary targets that still
// show their placeholder value. Targets already filled in are left alone.
func (t *Table) SeedSummary(summary model.Summary, latest int) {
	t.setIfPlaceholder(TotalTestsID, "0", fmt.Sprintf("%d", summary.Count))
	t.setIfPlaceholder(PassRateID, "0%", fmt.Sprintf("%d%%", summary.PassRate))
	t.setIfPlaceholder(LatestTestsID, "0", fmt.Sprintf("%d", latest))
	// No runtime data is available from the rows
	t.setIfPlaceholder(TotalRuntimeID, "0h", "0h")
}

func (t *Table) setIfPlaceholder(id, placeholder, value string) {
	n := getElementByID(t.doc.Root, id)
	if n == nil {
		return
	}
	if textContent(n) != placeholder {
		t.logger.Debug().Str("id", id).Msg("Keeping existing summary value")
		return
	}
	setTextContent(n, value)
}

// PopulateOptions appends one option per value to each filter select.
func (t *Table) PopulateOptions(options map[model.FilterKey][]string) {
	for _, key := range model.ConfigFilterKeys {
		sel := getElementByID(t.doc.Root, FilterControlID(key))
		if sel == nil {
			continue
		}
		for _, value := range options[key] {
			option := &html.Node{
				Type:     html.ElementNode,
				Data:     "option",
				DataAtom: atom.Option,
				Attr:     []html.Attribute{{Key: "value", Val: value}},
			}
			option.AppendChild(&html.Node{Type: html.TextNode, Data: value})
			sel.AppendChild(option)
		}
	}
}

// MarkSort sets the sort-asc / sort-desc class on the active sortable header.
func (t *Table) MarkSort(state model.SortState) {
	if t.table == nil {
		return
	}
	for _, th := range t.sortableHeaders() {
		removeClass(th, "sort-asc", "sort-desc")
		key, _ := getAttr(th, "data-sort")
		if state.Column != model.SortNone && key == string(state.Column) {
			addClass(th, "sort-"+string(state.Direction))
		}
	}
}

func (t *Table) sortColumns() []model.SortColumn {
	if t.table == nil {
		return nil
	}
	var columns []model.SortColumn
	for _, th := range t.sortableHeaders() {
		if key, ok := getAttr(th, "data-sort"); ok {
			columns = append(columns, model.SortColumn(key))
		}
	}
	return columns
}

func (t *Table) sortableHeaders() []*html.Node {
	return findAll(t.table, func(n *html.Node) bool {
		return n.DataAtom == atom.Th && hasClass(n, "sortable")
	})
}

// Render hides every row, then shows the rows of records in order with
// alternating parity classes. An empty view shows the no-results row instead.
// The pass rate of the view always replaces the displayed one.
func (t *Table) Render(records []model.TestRecord, summary model.Summary) {
	if t.tbody != nil {
		for _, row := range t.rows {
			setHidden(row, true)
		}

		for i, record := range records {
			if record.Position < 0 || record.Position >= len(t.rows) {
				t.logger.Warn().Int("position", record.Position).Msg("Record has no row")
				continue
			}
			row := t.rows[record.Position]
			setHidden(row, false)
			removeClass(row, "odd", "even")
			if i%2 == 0 {
				addClass(row, "even")
			} else {
				addClass(row, "odd")
			}
			t.tbody.RemoveChild(row)
			t.tbody.AppendChild(row)
		}

		if len(records) == 0 {
			t.showNoResults()
		} else {
			t.hideNoResults()
		}
	}

	if n := getElementByID(t.doc.Root, PassRateID); n != nil {
		setTextContent(n, fmt.Sprintf("%d%%", summary.PassRate))
	}
}

func (t *Table) noResultsRow() *html.Node {
	return findFirst(t.tbody, func(n *html.Node) bool {
		return n.DataAtom == atom.Tr && hasClass(n, noResultsClass)
	})
}

func (t *Table) showNoResults() {
	row := t.noResultsRow()
	if row == nil {
		cell := &html.Node{
			Type:     html.ElementNode,
			Data:     "td",
			DataAtom: atom.Td,
			Attr: []html.Attribute{
				{Key: "colspan", Val: noResultsColumns},
				{Key: "style", Val: "text-align: center; padding: 40px; color: #7f8c8d;"},
			},
		}
		cell.AppendChild(&html.Node{Type: html.TextNode, Data: noResultsMessage})
		row = &html.Node{
			Type:     html.ElementNode,
			Data:     "tr",
			DataAtom: atom.Tr,
			Attr:     []html.Attribute{{Key: "class", Val: noResultsClass}},
		}
		row.AppendChild(cell)
		t.tbody.AppendChild(row)
	}
	setHidden(row, false)
}

func (t *Table) hideNoResults() {
	if row := t.noResultsRow(); row != nil {
		setHidden(row, true)
	}
}
