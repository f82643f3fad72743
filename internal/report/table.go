package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
)

const minPadding = 2

// simpleStyle draws a header row, a dashed rule and the data rows, with no
// borders and two spaces between columns
var simpleStyle = table.Style{
	Name: "simple",
	Box: table.BoxStyle{
		MiddleHorizontal: "-",
		MiddleSeparator:  "  ",
		MiddleVertical:   "  ",
	},
	Format: table.FormatOptions{
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	},
	Options: table.Options{
		SeparateColumns: true,
		SeparateHeader:  true,
	},
}

// renderTable lays out rows in the "simple" plain-text style. Numeric
// columns are right-aligned with their decimal points lined up; everything
// else is left-aligned. Every column is at least two wider than its header.
func renderTable(headers []string, rows [][]string) string {
	cols := len(headers)
	cells := make([][]string, cols)
	configs := make([]table.ColumnConfig, cols)

	for c := 0; c < cols; c++ {
		column := make([]string, len(rows))
		for r, row := range rows {
			if c < len(row) {
				column[r] = row[c]
			}
		}

		align := text.AlignLeft
		if isNumericColumn(column) {
			column = alignDecimals(column)
			align = text.AlignRight
		}
		cells[c] = column
		configs[c] = table.ColumnConfig{
			Number:      c + 1,
			Align:       align,
			AlignHeader: align,
			WidthMin:    runewidth.StringWidth(headers[c]) + minPadding,
		}
	}

	t := table.NewWriter()
	t.SetStyle(simpleStyle)
	t.SetColumnConfigs(configs)

	header := make(table.Row, cols)
	for c, h := range headers {
		header[c] = h
	}
	t.AppendHeader(header)

	for r := range rows {
		row := make(table.Row, cols)
		for c := range headers {
			row[c] = cells[c][r]
		}
		t.AppendRow(row)
	}

	return t.Render()
}

// isNumericColumn reports whether every non-empty cell is a finite number
// and at least one such cell exists
func isNumericColumn(column []string) bool {
	seen := false
	for _, cell := range column {
		if cell == "" {
			continue
		}
		if !isNumber(cell) {
			return false
		}
		seen = true
	}
	return seen
}

func isNumber(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// alignDecimals right-pads numbers so their decimal points share a column
func alignDecimals(column []string) []string {
	after := make([]int, len(column))
	maxAfter := -1
	for i, cell := range column {
		after[i] = afterPoint(cell)
		if after[i] > maxAfter {
			maxAfter = after[i]
		}
	}
	if maxAfter < 0 {
		return column
	}

	out := make([]string, len(column))
	for i, cell := range column {
		if cell == "" {
			out[i] = cell
			continue
		}
		out[i] = cell + strings.Repeat(" ", maxAfter-after[i])
	}
	return out
}

// afterPoint returns the digits after the decimal point, or -1 for integers
func afterPoint(s string) int {
	if s == "" {
		return -1
	}
	if idx := strings.LastIndex(s, "."); idx >= 0 && !strings.ContainsAny(s, "eE") {
		return len(s) - idx - 1
	}
	return -1
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
