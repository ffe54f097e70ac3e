package cli

import (
	"os"

	"github.com/alecthomas/kong"
)

// BalanceCmd shows the current balance. It is the default command
// when budgetme runs without arguments.
type BalanceCmd struct{}

func (cmd *BalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "balance")
	if err != nil {
		return err
	}
	defer s.report()

	printBalance(os.Stdout, s.styles, s.ledger)

	// Accrual alone mutates the snapshot, so even a read-only command
	// reconciles and persists.
	return s.commit()
}
