// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for the CLI. The palette
// follows the ledger's traditional scheme: dates blue, spent amounts
// red, categories yellow, healthy balances green.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Date returns a styled history timestamp (blue).
func (s *Styles) Date(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("4")).
		String()
}

// Spent returns a styled deducted amount (bright red).
func (s *Styles) Spent(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("9")).
		String()
}

// Reason returns a styled spend category (yellow).
func (s *Styles) Reason(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Balance returns a balance amount, green when non-negative and
// bright red when negative.
func (s *Styles) Balance(text string, negative bool) string {
	if negative {
		return s.output.String(text).
			Foreground(s.output.Color("9")).
			String()
	}
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Keyword returns a styled configuration keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Timing returns a styled timing string, dimmed for fast operations
// and red for slow ones.
func (s *Styles) Timing(text string, isSlowOperation bool) string {
	if isSlowOperation {
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			String()
	}
	return s.Dim(text)
}
