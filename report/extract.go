package report

// This file contains extraction of test records from the rows of the
// results table.

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/runname"
)

// TableID is the id of the results table.
const TableID = "results-table"

const (
	cellName   = 0
	cellStatus = 1
	cellPassed = 3
	cellFailed = 4
)

// ClassifyIcon maps a status icon source to a status.
func ClassifyIcon(src string) model.Status {
	switch {
	case strings.Contains(src, "test_ok.png"):
		return model.StatusPass
	case strings.Contains(src, "test_error.png"):
		return model.StatusFail
	case strings.Contains(src, "test_warning.png"):
		return model.StatusWarning
	default:
		return model.StatusUnknown
	}
}

// Extract snapshots the rows of the results table into records and returns
// the Table that maps each record back to its row. A document without a
// results table yields an empty Table.
func Extract(logger zerolog.Logger, doc *Document) (*Table, []model.TestRecord) {
	table := &Table{doc: doc, logger: logger}

	tableNode := getElementByID(doc.Root, TableID)
	if tableNode == nil {
		logger.Warn().Str("id", TableID).Msg("Results table not found")
		return table, nil
	}
	table.table = tableNode
	table.tbody = findFirst(tableNode, func(n *html.Node) bool { return n.DataAtom == atom.Tbody })
	if table.tbody == nil {
		logger.Warn().Msg("Results table has no body")
		return table, nil
	}

	var records []model.TestRecord
	for _, row := range childElements(table.tbody, atom.Tr) {
		if hasClass(row, noResultsClass) {
			continue
		}
		cells := childElements(row, atom.Td)
		if len(cells) == 0 {
			logger.Debug().Msg("Skipping row without cells")
			continue
		}

		record := extractRecord(logger, cells)
		record.Position = len(records)
		records = append(records, record)
		table.rows = append(table.rows, row)
	}

	logger.Debug().Int("records", len(records)).Msg("Extracted records")
	return table, records
}

func extractRecord(logger zerolog.Logger, cells []*html.Node) model.TestRecord {
	identifier := strings.TrimSpace(textContent(cells[cellName]))

	var link string
	if a := findFirst(cells[cellName], func(n *html.Node) bool { return n.DataAtom == atom.A }); a != nil {
		link, _ = getAttr(a, "href")
	}

	status := model.StatusUnknown
	if len(cells) > cellStatus {
		if img := findFirst(cells[cellStatus], func(n *html.Node) bool { return n.DataAtom == atom.Img }); img != nil {
			src, _ := getAttr(img, "src")
			status = ClassifyIcon(src)
		}
	}

	return model.TestRecord{
		Identifier:  identifier,
		Link:        link,
		Status:      status,
		Config:      runname.Parse(identifier),
		Timestamp:   runname.ExtractTimestamp(identifier),
		PassedCount: cellCount(logger, cells, cellPassed, "data-passed"),
		FailedCount: cellCount(logger, cells, cellFailed, "data-failed"),
	}
}

// cellCount reads a test case count from the data attribute of a cell,
// falling back to its text and then to zero.
func cellCount(logger zerolog.Logger, cells []*html.Node, index int, attr string) int {
	if index >= len(cells) {
		return 0
	}
	cell := cells[index]
	if v, ok := getAttr(cell, attr); ok {
		if n, ok := parseLeadingInt(v); ok {
			return n
		}
	}
	text := textContent(cell)
	if n, ok := parseLeadingInt(text); ok {
		return n
	}
	if strings.TrimSpace(text) != "" {
		logger.Warn().Str("attr", attr).Str("text", text).Msg("Unparsable test case count")
	}
	return 0
}

// parseLeadingInt parses the integer at the start of s, ignoring leading
// whitespace and anything after the digits. Negative values are clamped to 0.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	if n < 0 {
		return 0, true
	}
	return n, true
}
