package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spend deducts amount (scaled by the category's cringe factor) from
// the balance and appends the resulting item to the history.
//
// Non-positive amounts are rejected with ErrNonPositiveAmount. A
// spend that would push the balance negative is refused with an
// OverBudgetError unless loan is set. The redo stack is left alone;
// a stale redo after intervening spends is the caller's gamble.
func (l *Ledger) Spend(amount decimal.Decimal, reason, specific string, loan bool, now time.Time) (HistoryItem, error) {
	if !amount.IsPositive() {
		return HistoryItem{}, ErrNonPositiveAmount
	}
	scaled := amount.Mul(l.EffectiveMultiplier(reason))
	newBalance := l.Balance.Sub(scaled)
	if newBalance.IsNegative() && !loan {
		return HistoryItem{}, &OverBudgetError{Balance: l.Balance, Amount: scaled}
	}
	item := HistoryItem{
		Amount:   scaled,
		Reason:   reason,
		Specific: specific,
		Time:     now.UnixMilli(),
	}
	l.History = append(l.History, item)
	l.Balance = newBalance
	return item, nil
}

// Undo removes the most recent spend from the history, restores its
// amount to the balance, and parks the item on the redo stack.
func (l *Ledger) Undo() (HistoryItem, error) {
	if len(l.History) == 0 {
		return HistoryItem{}, ErrNothingToUndo
	}
	item := l.History[len(l.History)-1]
	l.History = l.History[:len(l.History)-1]
	l.Balance = l.Balance.Add(item.Amount)
	l.RedoStack = append(l.RedoStack, item)
	return item, nil
}

// Redo reapplies the most recently undone spend: pops it off the redo
// stack, deducts its amount again, and appends it back to the history.
func (l *Ledger) Redo() (HistoryItem, error) {
	if len(l.RedoStack) == 0 {
		return HistoryItem{}, ErrNothingToRedo
	}
	item := l.RedoStack[len(l.RedoStack)-1]
	l.RedoStack = l.RedoStack[:len(l.RedoStack)-1]
	l.Balance = l.Balance.Sub(item.Amount)
	l.History = append(l.History, item)
	return item, nil
}

// Garnish converts a negative balance into explicit debt, zeroing the
// balance. Future accrual repays the debt at up to half the gross per
// update. Returns the amount moved, or ErrNothingToGarnish when the
// balance is not negative.
func (l *Ledger) Garnish() (decimal.Decimal, error) {
	if !l.Balance.IsNegative() {
		return decimal.Zero, ErrNothingToGarnish
	}
	moved := l.Balance.Neg()
	l.Debt = l.Debt.Add(moved)
	l.Balance = decimal.Zero
	return moved, nil
}
