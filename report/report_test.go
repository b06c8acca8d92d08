package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/query"
)

func loadFixture(t *testing.T) (*Document, *Table, []model.TestRecord) {
	t.Helper()
	doc, err := Load(zerolog.Nop(), "testdata")
	require.NoError(t, err)
	table, records := Extract(zerolog.Nop(), doc)
	return doc, table, records
}

func visibleIdentifiers(t *testing.T, table *Table) []string {
	t.Helper()
	var ids []string
	for _, row := range childElements(table.tbody, atom.Tr) {
		if isHidden(row) || hasClass(row, noResultsClass) {
			continue
		}
		cells := childElements(row, atom.Td)
		if len(cells) == 0 {
			continue
		}
		ids = append(ids, strings.TrimSpace(textContent(cells[0])))
	}
	return ids
}

func elementText(t *testing.T, doc *Document, id string) string {
	t.Helper()
	n := getElementByID(doc.Root, id)
	require.NotNil(t, n, id)
	return textContent(n)
}

func TestClassifyIcon(t *testing.T) {
	assert.Equal(t, model.StatusPass, ClassifyIcon("https://example.org/icons/test_ok.png"))
	assert.Equal(t, model.StatusFail, ClassifyIcon("test_error.png"))
	assert.Equal(t, model.StatusWarning, ClassifyIcon("img/test_warning.png?v=2"))
	assert.Equal(t, model.StatusUnknown, ClassifyIcon("spinner.gif"))
	assert.Equal(t, model.StatusUnknown, ClassifyIcon(""))
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(zerolog.Nop(), filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)

	_, err = Load(zerolog.Nop(), t.TempDir())
	require.Error(t, err)
}

func TestExtract(t *testing.T) {
	_, table, records := loadFixture(t)

	require.Len(t, records, 4)
	assert.Equal(t, 4, table.rowCount())

	first := records[0]
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "3.4-almalinux9-confluent-ethernet-gpu-none-x86_64-slurm", first.Identifier)
	assert.Equal(t, "runs/3.4-almalinux9-confluent-ethernet-gpu-none-x86_64-slurm/", first.Link)
	assert.Equal(t, model.StatusPass, first.Status)
	assert.Equal(t, "confluent", first.Config.Provisioner)
	assert.Equal(t, 10, first.PassedCount)
	assert.Equal(t, 0, first.FailedCount)

	second := records[1]
	assert.Empty(t, second.Link)
	assert.Equal(t, model.StatusFail, second.Status)
	assert.Equal(t, "INTEL", second.Config.Compiler)
	assert.Equal(t, 8, second.PassedCount, "falls back to leading integer of the text")
	assert.Equal(t, 2, second.FailedCount, "falls back to text when the attribute does not parse")

	third := records[2]
	assert.Equal(t, 2, third.Position)
	assert.Equal(t, model.StatusWarning, third.Status)
	assert.Equal(t, 0, third.PassedCount)
	assert.Equal(t, 0, third.FailedCount)

	fourth := records[3]
	assert.Equal(t, model.StatusUnknown, fourth.Status)
	assert.Equal(t, "2024-01-15-14-30-45", fourth.Timestamp)
	assert.Equal(t, 0, fourth.PassedCount)
	assert.Equal(t, 0, fourth.FailedCount)
}

func TestExtract_NoTable(t *testing.T) {
	doc, err := Parse(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)

	table, records := Extract(zerolog.Nop(), doc)
	assert.Empty(t, records)

	// Every adapter step is a no-op without the controls
	table.SeedSummary(model.Summary{Count: 3}, 1)
	table.PopulateOptions(map[model.FilterKey][]string{model.FilterRMS: {"slurm"}})
	table.MarkSort(model.SortState{Column: model.SortTest, Direction: model.Ascending})
	table.Render(nil, model.Summary{})
	assert.Empty(t, table.sortColumns())
}

func TestSeedSummary_KeepsAuthoritativeValues(t *testing.T) {
	doc, table, records := loadFixture(t)

	table.SeedSummary(query.Summarize(records), query.CountLatest(records))

	assert.Equal(t, "4", elementText(t, doc, TotalTestsID))
	assert.Equal(t, "12h", elementText(t, doc, TotalRuntimeID))
	assert.Equal(t, "90%", elementText(t, doc, PassRateID))
	assert.Equal(t, "1", elementText(t, doc, LatestTestsID))

	// A second seed finds no placeholders left
	table.SeedSummary(model.Summary{Count: 99, PassRate: 1}, 42)
	assert.Equal(t, "4", elementText(t, doc, TotalTestsID))
	assert.Equal(t, "90%", elementText(t, doc, PassRateID))
	assert.Equal(t, "1", elementText(t, doc, LatestTestsID))
}

func TestRender(t *testing.T) {
	doc, table, records := loadFixture(t)

	view := query.Sort(records, model.SortState{Column: model.SortTest, Direction: model.Descending})
	view = query.Filter(view, model.NewFilterState().With(model.FilterNetwork, "ethernet"))
	table.Render(view, query.Summarize(view))

	assert.Equal(t, []string{
		"3.4-almalinux9-warewulf4-ethernet-INTEL-gpu-none-x86_64-slurm",
		"3.4-almalinux9-confluent-ethernet-gpu-none-x86_64-slurm",
		"2024-01-15-14-30-45-leap15.5-warewulf-x86_64-openpbs",
	}, visibleIdentifiers(t, table))
	assert.Equal(t, "90%", elementText(t, doc, PassRateID))

	assert.True(t, hasClass(table.rows[1], "even"))
	assert.True(t, hasClass(table.rows[0], "odd"))
	assert.False(t, hasClass(table.rows[0], "even"))
	assert.True(t, hasClass(table.rows[3], "even"))
	assert.True(t, isHidden(table.rows[2]))

	// Inline styles other than display survive
	style, _ := getAttr(table.rows[2], "style")
	assert.Equal(t, "color: red; display: none", style)

	assert.Nil(t, table.noResultsRow())
}

func TestRender_NoResults(t *testing.T) {
	doc, table, records := loadFixture(t)

	none := query.Filter(records, model.NewFilterState().With(model.FilterSearch, "no-such-run"))
	table.Render(none, query.Summarize(none))

	assert.Empty(t, visibleIdentifiers(t, table))
	row := table.noResultsRow()
	require.NotNil(t, row)
	assert.False(t, isHidden(row))
	assert.Contains(t, textContent(row), "No test results match the current filters.")
	assert.Equal(t, "0%", elementText(t, doc, PassRateID))

	table.Render(records, query.Summarize(records))
	assert.Len(t, visibleIdentifiers(t, table), 4)
	assert.True(t, isHidden(row))
	assert.Same(t, row, table.noResultsRow())
}

func TestMarkSort(t *testing.T) {
	_, table, _ := loadFixture(t)

	assert.Equal(t, []model.SortColumn{model.SortTest, model.SortStatus, model.SortDate}, table.sortColumns())

	table.MarkSort(model.SortState{Column: model.SortStatus, Direction: model.Descending})
	headers := table.sortableHeaders()
	assert.False(t, hasClass(headers[0], "sort-asc"))
	assert.True(t, hasClass(headers[1], "sort-desc"))

	table.MarkSort(model.SortState{Column: model.SortDate, Direction: model.Ascending})
	assert.False(t, hasClass(headers[1], "sort-desc"))
	assert.True(t, hasClass(headers[2], "sort-asc"))
	assert.True(t, hasClass(headers[2], "sortable"))
}

func TestPopulateOptionsAndWrite(t *testing.T) {
	doc, table, records := loadFixture(t)

	table.PopulateOptions(query.Options(records))

	sel := getElementByID(doc.Root, FilterControlID(model.FilterDistribution))
	var values []string
	for _, option := range childElements(sel, atom.Option) {
		v, _ := getAttr(option, "value")
		values = append(values, v)
	}
	assert.Equal(t, []string{"", "almalinux9", "leap15.5", "rocky9"}, values)

	out := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, doc.WriteFile(out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	reparsed, err := html.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.NotNil(t, getElementByID(reparsed, TableID))
	assert.Contains(t, string(data), `<option value="INTEL">INTEL</option>`)
}
