package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/budgetme/budgetme/budget"
)

// GarnishCmd converts a negative balance into debt. Until the debt is
// repaid, half of each accrual goes towards it.
type GarnishCmd struct{}

func (cmd *GarnishCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "garnish")
	if err != nil {
		return err
	}
	defer s.report()

	moved, err := s.ledger.Garnish()
	if errors.Is(err, budget.ErrNothingToGarnish) {
		printWarning(os.Stderr, err.Error())
	} else if err != nil {
		return err
	} else {
		printSuccess(os.Stdout, fmt.Sprintf("moved %s into debt", budget.FormatDollars(moved)))
	}

	printBalance(os.Stdout, s.styles, s.ledger)

	return s.commit()
}
