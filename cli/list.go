package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/budgetme/budgetme/budget"
)

// ListCmd prints the spending history, most recent last, followed by
// the balance.
type ListCmd struct{}

func (cmd *ListCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "list")
	if err != nil {
		return err
	}
	defer s.report()

	width := 0
	for _, item := range s.ledger.History {
		if w := runewidth.StringWidth(budget.FormatDollars(item.Amount)); w > width {
			width = w
		}
	}
	for _, item := range s.ledger.History {
		printItem(os.Stdout, s.styles, item, s.now, width)
	}
	printBalance(os.Stdout, s.styles, s.ledger)

	return s.commit()
}
