// Package cli provides the budgetme command implementations.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/budgetme/budgetme/budget"
	"github.com/budgetme/budgetme/output"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	warnSymbol    = "!"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FFAF00", Dark: "#FFAF00"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printWarning(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		warnStyle.Render(warnSymbol),
		warnStyle.Render(message),
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// formatItemTime renders a history timestamp like the spending list
// always has: month, day and clock time, with the year included only
// when it is not the current one.
func formatItemTime(ms int64, now time.Time) string {
	t := time.UnixMilli(ms).In(time.Local)
	if t.Year() == now.Year() {
		return t.Format("Jan 02 03:04pm")
	}
	return t.Format("Jan 02 2006 03:04pm")
}

// printItem writes one history entry: blue date, red amount, yellow
// reason and an optional dimmed note. amountWidth right-aligns the
// amount column; pass 0 for no padding.
func printItem(w io.Writer, styles *output.Styles, item budget.HistoryItem, now time.Time, amountWidth int) {
	amount := budget.FormatDollars(item.Amount)
	if amountWidth > 0 {
		amount = runewidth.FillLeft(amount, amountWidth)
	}
	line := fmt.Sprintf("%s: %s %s",
		styles.Date(formatItemTime(item.Time, now)),
		styles.Spent(amount),
		styles.Reason(item.Reason),
	)
	if item.Specific != "" {
		line += " " + styles.Dim(item.Specific)
	}
	_, _ = fmt.Fprintln(w, line)
}

// printBalance writes the ledger's spendable figure, red when the
// total is negative. With outstanding debt the breakdown is shown.
func printBalance(w io.Writer, styles *output.Styles, ledger *budget.Ledger) {
	total := ledger.TotalBalance()
	formatted := styles.Balance(budget.FormatDollars(total), total.IsNegative())
	if ledger.Debt.IsPositive() {
		_, _ = fmt.Fprintf(w, "Balance: %s %s\n", formatted,
			styles.Dim(fmt.Sprintf("(%s held, %s debt)",
				budget.FormatDollars(ledger.Balance),
				budget.FormatDollars(ledger.Debt))))
		return
	}
	_, _ = fmt.Fprintf(w, "Balance: %s\n", formatted)
}
