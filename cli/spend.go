package cli

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/budgetme/budgetme/budget"
)

// SpendCmd deducts an amount from the balance and records it in the
// history.
type SpendCmd struct {
	Amount   string `arg:"" help:"Amount to spend, in dollars."`
	Reason   string `arg:"" help:"The category of spending."`
	Specific string `arg:"" optional:"" help:"More specific description of spending."`
	Loan     bool   `short:"o" help:"Allow spending beyond the current account balance."`
}

func (cmd *SpendCmd) Run(ctx *kong.Context, globals *Globals) error {
	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil {
		return errors.New("amount must be a number")
	}

	s, err := openSession(globals, "spend")
	if err != nil {
		return err
	}
	defer s.report()

	item, spendErr := s.ledger.Spend(amount, cmd.Reason, cmd.Specific, cmd.Loan, s.now)

	var overBudget *budget.OverBudgetError
	if errors.As(spendErr, &overBudget) {
		// Offer the loan escape hatch interactively; non-terminal runs
		// keep the plain refusal.
		takeLoan, promptErr := promptYesNo("Request is over budget. Take a loan?")
		if promptErr != nil {
			return promptErr
		}
		if takeLoan {
			item, spendErr = s.ledger.Spend(amount, cmd.Reason, cmd.Specific, true, s.now)
		}
	}

	switch {
	case spendErr == nil:
		printItem(os.Stdout, s.styles, item, s.now, 0)
	case errors.Is(spendErr, budget.ErrNonPositiveAmount):
		printWarning(os.Stderr, spendErr.Error())
	case errors.As(spendErr, &overBudget):
		printWarning(os.Stderr, "request is over budget")
	default:
		return spendErr
	}

	printBalance(os.Stdout, s.styles, s.ledger)

	// A refused spend leaves the ledger untouched; the accrual that
	// already happened still commits.
	return s.commit()
}
