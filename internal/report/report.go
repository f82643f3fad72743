package report

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"tlr/internal/aggregate"
	"tlr/internal/domain"
	tlrerrors "tlr/internal/errors"
)

// Section titles, in output order
const (
	SectionSummary  = "[ SUMMARY ]"
	SectionResults  = "[ TEST RESULTS ]"
	SectionDetailed = "[ DETAILED TEST RESULTS ]"
)

var (
	summaryHeaders = []string{"PASS", "FAIL", "SKIP", "SUCCESSRATE"}
	resultsHeaders = []string{"NAME", "ENV", "DEBUG", "PASS", "FAIL", "SKIP", "SUCCESSRATE"}
	detailHeaders  = []string{"ID", "RESULT", "DEBUG", "REASON"}
)

// Formatter renders and writes reports
type Formatter struct {
	logger zerolog.Logger
}

// NewFormatter creates a new Formatter
func NewFormatter(logger zerolog.Logger) *Formatter {
	return &Formatter{logger: logger}
}

// Format renders the summary, per-suite and detailed sections.
// It fails with an aggregate error when any success rate is undefined.
func (f *Formatter) Format(summary *aggregate.Summary) (string, error) {
	rates, err := summary.Rates()
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString(SectionSummary + "\n\n")
	b.WriteString(renderTable(summaryHeaders, [][]string{
		append(countCells(summary.Global), formatRate(rates.Global)),
	}))

	rows := make([][]string, 0, len(summary.Suites))
	for i, suite := range summary.Suites {
		row := []string{
			suite.Record.Suite,
			suite.Record.Environment,
			domain.OrPlaceholder(suite.Record.Debug),
		}
		row = append(row, countCells(suite.Counts)...)
		rows = append(rows, append(row, formatRate(rates.Suites[i])))
	}
	b.WriteString("\n\n" + SectionResults + "\n\n")
	b.WriteString(renderTable(resultsHeaders, rows))

	b.WriteString("\n\n" + SectionDetailed + "\n\n")
	for _, suite := range summary.Suites {
		b.WriteString(suite.Record.Suite + "\n\n")
		b.WriteString(renderTable(detailHeaders, detailRows(suite.Record)))
		b.WriteString("\n\n")
	}

	return b.String(), nil
}

// Write renders the report and writes it to path, truncating any existing
// file. Nothing is written when rendering fails.
func (f *Formatter) Write(path string, summary *aggregate.Summary) (string, error) {
	text, err := f.Format(summary)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", tlrerrors.Format(path, "write report", err)
	}
	f.logger.Debug().Str("path", path).Int("bytes", len(text)).Msg("report written")
	return text, nil
}

func countCells(c domain.CounterSet) []string {
	return []string{strconv.Itoa(c.Pass), strconv.Itoa(c.Fail), strconv.Itoa(c.Skip)}
}

func detailRows(record domain.LogRecord) [][]string {
	rows := make([][]string, 0, len(record.Cases))
	for _, tc := range record.Cases {
		rows = append(rows, []string{
			tc.ID,
			tc.Status,
			domain.OrPlaceholder(tc.Debug),
			domain.OrPlaceholder(tc.Reason),
		})
	}
	return rows
}
