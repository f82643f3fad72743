package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlr/internal/config"
	"tlr/internal/domain"
	"tlr/internal/parser"
)

func newTestFormatter(t *testing.T, root string) (*Formatter, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	cfg := config.New()
	cfg.RootDir = root
	f := NewFormatter(cfg, parser.NewXMLParser())
	var buf bytes.Buffer
	f.SetOutput(&buf)
	return f, &buf
}

func TestFormatter_PrintRunStats(t *testing.T) {
	root := t.TempDir()
	f, buf := newTestFormatter(t, root)

	output := &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalSuites: 2,
			TotalCases:  5,
			Counts:      domain.CounterSet{Pass: 2, Fail: 2, Unknown: 1},
			SuccessRate: 0.5,
			ReportPath:  "./report.txt",
		},
		Suites: []domain.SuiteResult{
			{Record: domain.LogRecord{Path: filepath.Join(root, "nightly", "api.xml"), Suite: "api", Cases: []domain.TestCaseResult{
				{ID: "a1", Status: "FAIL", Reason: "timeout"},
				{ID: "a2", Status: "PASS"},
			}}},
			{Record: domain.LogRecord{Path: filepath.Join(root, "smoke.xml"), Suite: "smoke", Cases: []domain.TestCaseResult{
				{ID: "s1", Status: "FAIL"},
				{ID: "s2", Status: "PASS"},
				{ID: "s3", Status: "ERROR"},
			}}},
		},
	}

	f.PrintRunStats(output)
	out := buf.String()

	assert.Contains(t, out, "Test Log Statistics")
	assert.Contains(t, out, "Unrecognized (not counted)")
	assert.Contains(t, out, "0.50")
	assert.Contains(t, out, "✗ 2 test case(s) failed")
	assert.Contains(t, out, "├── nightly")
	assert.Contains(t, out, "└── api.xml")
	assert.Contains(t, out, "a1 timeout")
	assert.Contains(t, out, "└── smoke.xml")
	assert.Contains(t, out, "s1 -")
	assert.NotContains(t, out, "a2")
}

func TestFormatter_PrintRunStats_AllPassed(t *testing.T) {
	f, buf := newTestFormatter(t, t.TempDir())

	f.PrintRunStats(&domain.RunOutput{Meta: domain.RunMeta{Counts: domain.CounterSet{Pass: 3}, SuccessRate: 1}})

	assert.Contains(t, buf.String(), "✓ No failed test cases")
	assert.NotContains(t, buf.String(), "Unrecognized")
}

func TestFormatter_PrintFileList(t *testing.T) {
	root := t.TempDir()
	f, buf := newTestFormatter(t, root)

	path := filepath.Join(root, "smoke.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<test_results test_suite="smoke"><environment>ci</environment><tc_result id="1" result="PASS"/><tc_result id="2" result="FAIL"/></test_results>`), 0644))

	require.NoError(t, f.PrintFileList([]string{path}, false))
	assert.Contains(t, buf.String(), "Found 1 log file(s)")
	assert.Contains(t, buf.String(), "└── smoke.xml")

	buf.Reset()
	require.NoError(t, f.PrintFileList([]string{path}, true))
	assert.Contains(t, buf.String(), "[smoke: 2 case(s)]")

	broken := filepath.Join(root, "broken.xml")
	require.NoError(t, os.WriteFile(broken, []byte("nope"), 0644))
	assert.Error(t, f.PrintFileList([]string{broken}, true))
}

func TestFillSuiteDetails(t *testing.T) {
	s := domain.SuiteResult{
		Record: domain.LogRecord{
			Path:  "/logs/smoke.xml",
			Suite: "smoke",
			Cases: []domain.TestCaseResult{
				{ID: "1", Status: "PASS"},
				{ID: "2", Status: "FAIL", Reason: "boom"},
				{ID: "3", Status: "ERROR"},
				{ID: "4", Status: "SKIP", Debug: "see [trace]"},
			},
		},
		Counts: domain.CounterSet{Pass: 1, Fail: 1, Skip: 1, Unknown: 1},
	}

	table := tview.NewTable()
	fillSuiteDetails(table, s)

	require.Equal(t, 5, table.GetRowCount())
	assert.Equal(t, "RESULT", table.GetCell(0, 1).Text)

	tests := []struct {
		row    int
		status string
		color  tcell.Color
	}{
		{1, "PASS", tcell.ColorGreen},
		{2, "FAIL", tcell.ColorRed},
		{3, "ERROR", tcell.ColorGray},
		{4, "SKIP", tcell.ColorYellow},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			cell := table.GetCell(tt.row, 1)
			assert.Equal(t, tt.status, cell.Text)
			fg, _, _ := cell.Style.Decompose()
			assert.Equal(t, tt.color, fg)
		})
	}

	assert.Equal(t, "boom", table.GetCell(2, 3).Text)
	assert.Equal(t, "-", table.GetCell(1, 3).Text)
	assert.Equal(t, tview.Escape("see [trace]"), table.GetCell(4, 2).Text)

	// refilling replaces the previous suite's rows
	fillSuiteDetails(table, domain.SuiteResult{Record: domain.LogRecord{Cases: []domain.TestCaseResult{{ID: "9", Status: "PASS"}}}})
	assert.Equal(t, 2, table.GetRowCount())
}

func TestFormatSuiteStats(t *testing.T) {
	s := domain.SuiteResult{
		Record:      domain.LogRecord{Path: "/logs/smoke.xml", Suite: "smoke", Environment: "ci"},
		Counts:      domain.CounterSet{Pass: 1, Fail: 1, Unknown: 1},
		SuccessRate: 0.5,
	}

	stats := formatSuiteStats(s)
	assert.Contains(t, stats, "/logs/smoke.xml")
	assert.Contains(t, stats, "PASS 1")
	assert.Contains(t, stats, "rate 0.50")
	assert.Contains(t, stats, "1 case(s) with an unrecognized result")

	s.Counts.Unknown = 0
	assert.NotContains(t, formatSuiteStats(s), "unrecognized")
}

func TestSuiteListText(t *testing.T) {
	failing := domain.SuiteResult{Record: domain.LogRecord{Suite: "smoke"}, Counts: domain.CounterSet{Fail: 1}}
	assert.Equal(t, "[red]✗ [yellow]3.[white] smoke", suiteListText(failing, 3))

	failing.Reviewed = true
	assert.Contains(t, suiteListText(failing, 3), "[gray]✓")

	passing := domain.SuiteResult{Record: domain.LogRecord{Suite: "unit"}, Counts: domain.CounterSet{Pass: 1}}
	assert.Equal(t, "[green]✓ [yellow]1.[white] unit", suiteListText(passing, 1))
}

func TestCountReviewed(t *testing.T) {
	assert.Equal(t, 1, countReviewed([]domain.SuiteResult{{Reviewed: true}, {}}))
}
