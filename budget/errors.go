package budget

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Fatal precondition violations. These abort the current operation
// with no partial mutation.
var (
	// ErrNothingToUndo is returned by Undo on an empty history.
	ErrNothingToUndo = errors.New("nothing to undo: history is empty")

	// ErrNothingToRedo is returned by Redo on an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo: redo stack is empty")
)

// User input errors. The operation is refused but the process
// continues normally.
var (
	// ErrNonPositiveAmount is returned by Spend for amounts <= 0.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrNothingToGarnish is returned by Garnish when the balance is
	// not negative.
	ErrNothingToGarnish = errors.New("nothing to garnish: balance is not negative")
)

// ClockSkewError is returned by Accrue when the current time maps to
// an earlier day than the ledger's stored watermark. The clock must
// be monotonic relative to stored state; this is a fatal precondition
// violation, not a recoverable condition.
type ClockSkewError struct {
	LastUpdated int64
	Now         int64
}

func (e *ClockSkewError) Error() string {
	return fmt.Sprintf("clock moved backward: ledger was last updated at %d but now is %d", e.LastUpdated, e.Now)
}

// OverBudgetError is returned by Spend when the scaled amount exceeds
// the balance and no loan was requested. The ledger is unchanged.
type OverBudgetError struct {
	Balance decimal.Decimal
	Amount  decimal.Decimal
}

func (e *OverBudgetError) Error() string {
	return fmt.Sprintf("request is over budget: balance is %s, spend of %s refused", FormatDollars(e.Balance), FormatDollars(e.Amount))
}

// UnknownVersionError is returned when a persisted ledger document
// was written by a newer schema than this build understands.
type UnknownVersionError struct {
	Version   int
	Supported int
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown ledger version %d (supported up to %d); refusing to load", e.Version, e.Supported)
}

// Reconciliation failures. Verify returns one of these when the local
// ledger may not safely overwrite the persisted one; the local
// mutation is discarded and the remote state left untouched.

// DivergeError means the history or redo stacks differ in length by
// more than the bounded window Verify can reason about.
type DivergeError struct {
	HistoryDelta int
	RedoDelta    int
}

func (e *DivergeError) Error() string {
	return "histories diverge by more than one entry"
}

// IncompatibleError means neither history is a single-entry extension
// of the other: concurrent divergent edits with no safe winner.
type IncompatibleError struct{}

func (e *IncompatibleError) Error() string {
	return "histories are incompatible"
}

// BalanceMismatchError means the histories lined up as a single
// undo or spend divergence but the balances do not account for it.
type BalanceMismatchError struct {
	// NewEntry is true when the local side had the extra entry (a new
	// spend); false when the remote side did (a local undo).
	NewEntry bool
	Expected decimal.Decimal
	Found    decimal.Decimal
}

func (e *BalanceMismatchError) Error() string {
	if e.NewEntry {
		return fmt.Sprintf("ledger has new entry but diverges from stored data (expected %s but found %s)", e.Expected, e.Found)
	}
	return fmt.Sprintf("ledger missing entry but stored balance does not match (expected %s but found %s)", e.Expected, e.Found)
}

// UnclassifiedError is the catch-all reconciliation failure: the
// ledgers differ in a way none of the bounded cases explain.
type UnclassifiedError struct{}

func (e *UnclassifiedError) Error() string {
	return "unknown verification failure"
}
