package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tlr/internal/domain"
	"tlr/internal/storage"
)

// SuiteBrowser displays a stored run in an interactive TUI: suites on the
// left, the selected suite's cases on the right
type SuiteBrowser struct {
	storage storage.Storage
}

// NewSuiteBrowser creates a new SuiteBrowser
func NewSuiteBrowser(st storage.Storage) *SuiteBrowser {
	return &SuiteBrowser{storage: st}
}

// View runs the browser until the user exits
func (sb *SuiteBrowser) View(output *domain.RunOutput) error {
	if len(output.Suites) == 0 {
		color.Yellow("No suites in the last run")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range output.Suites {
		list.AddItem(suiteListText(output.Suites[i], i+1), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTable().
		SetFixed(1, 0).
		SetSeparator(' ')

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 4, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveErr error

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(" Suites (%d total, %d reviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ",
			len(output.Suites), countReviewed(output.Suites)))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(output.Suites) {
			statsView.SetText(formatSuiteStats(output.Suites[index]))
			fillSuiteDetails(detailsView, output.Suites[index])
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(output.Suites) {
					output.Suites[index].Reviewed = !output.Suites[index].Reviewed
					list.SetItemText(index, suiteListText(output.Suites[index], index+1), "")
					updateHeader()
					saveErr = sb.storage.SaveOutput(output)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return saveErr
}

func countReviewed(suites []domain.SuiteResult) int {
	n := 0
	for _, s := range suites {
		if s.Reviewed {
			n++
		}
	}
	return n
}

// suiteListText formats a list entry using tview color tags
func suiteListText(s domain.SuiteResult, number int) string {
	mark := "[red]✗"
	if s.Counts.Fail == 0 {
		mark = "[green]✓"
	}
	if s.Reviewed {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", number, s.Record.Suite)
	}
	return fmt.Sprintf("%s [yellow]%d.[white] %s", mark, number, s.Record.Suite)
}

// formatSuiteStats formats the stats header for a suite
func formatSuiteStats(s domain.SuiteResult) string {
	stats := fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]  [cyan]env:[white] %s  [cyan]debug:[white] %s\n"+
		"[green]PASS %d[white]  [red]FAIL %d[white]  [yellow]SKIP %d[white]  rate %.2f\n"+
		"[cyan]file:[white] %s",
		tview.Escape(s.Record.Suite), tview.Escape(s.Record.Environment), tview.Escape(domain.OrPlaceholder(s.Record.Debug)),
		s.Counts.Pass, s.Counts.Fail, s.Counts.Skip, s.SuccessRate,
		tview.Escape(s.Record.Path))
	if s.Counts.Unknown > 0 {
		stats += fmt.Sprintf("\n[yellow]%d case(s) with an unrecognized result are not counted[white]", s.Counts.Unknown)
	}
	return stats
}

var detailHeaders = []string{"ID", "RESULT", "DEBUG", "REASON"}

// fillSuiteDetails lists the suite's cases in source order, one row per case
func fillSuiteDetails(table *tview.Table, s domain.SuiteResult) {
	table.Clear()
	for col, h := range detailHeaders {
		table.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}
	for i, tc := range s.Record.Cases {
		row := i + 1
		table.SetCell(row, 0, tview.NewTableCell(tview.Escape(tc.ID)))
		table.SetCell(row, 1, tview.NewTableCell(tview.Escape(tc.Status)).SetTextColor(outcomeColor(tc.Outcome())))
		table.SetCell(row, 2, tview.NewTableCell(tview.Escape(domain.OrPlaceholder(tc.Debug))))
		table.SetCell(row, 3, tview.NewTableCell(tview.Escape(domain.OrPlaceholder(tc.Reason))).SetExpansion(1))
	}
}

func outcomeColor(kind domain.OutcomeKind) tcell.Color {
	switch kind {
	case domain.OutcomePass:
		return tcell.ColorGreen
	case domain.OutcomeFail:
		return tcell.ColorRed
	case domain.OutcomeSkip:
		return tcell.ColorYellow
	default:
		return tcell.ColorGray
	}
}
