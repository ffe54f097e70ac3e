package cli

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"github.com/budgetme/budgetme/budget"
)

// UndoCmd reverts the most recent spend, parking it for redo.
type UndoCmd struct{}

func (cmd *UndoCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "undo")
	if err != nil {
		return err
	}
	defer s.report()

	item, err := s.ledger.Undo()
	if errors.Is(err, budget.ErrNothingToUndo) {
		printError(os.Stderr, err.Error())
		return NewCommandError(1)
	}
	if err != nil {
		return err
	}

	printItem(os.Stdout, s.styles, item, s.now, 0)
	printBalance(os.Stdout, s.styles, s.ledger)

	return s.commit()
}

// RedoCmd reapplies the most recently undone spend.
type RedoCmd struct{}

func (cmd *RedoCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "redo")
	if err != nil {
		return err
	}
	defer s.report()

	item, err := s.ledger.Redo()
	if errors.Is(err, budget.ErrNothingToRedo) {
		printError(os.Stderr, err.Error())
		return NewCommandError(1)
	}
	if err != nil {
		return err
	}

	printItem(os.Stdout, s.styles, item, s.now, 0)
	printBalance(os.Stdout, s.styles, s.ledger)

	return s.commit()
}
