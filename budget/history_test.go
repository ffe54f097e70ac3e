package budget

import (
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

// TestSpend_RecordsItem verifies a plain spend deducts the balance
// and appends exactly one history entry.
func TestSpend_RecordsItem(t *testing.T) {
	l := New(baseTime)
	item, err := l.Spend(d("5"), "food", "lunch", false, baseTime)
	assert.NoError(t, err)

	assert.True(t, l.Balance.Equal(d("5")))
	assert.Equal(t, 1, len(l.History))
	assert.Equal(t, 0, len(l.RedoStack))
	assert.Equal(t, "food", item.Reason)
	assert.Equal(t, "lunch", item.Specific)
	assert.Equal(t, baseTime.UnixMilli(), item.Time)
}

// TestSpend_RejectsNonPositive verifies zero and negative amounts are
// refused without mutation.
func TestSpend_RejectsNonPositive(t *testing.T) {
	l := New(baseTime)
	for _, amount := range []string{"0", "-1"} {
		_, err := l.Spend(d(amount), "food", "", false, baseTime)
		assert.IsError(t, err, ErrNonPositiveAmount)
	}
	assert.True(t, l.Balance.Equal(d("10")))
	assert.Equal(t, 0, len(l.History))
}

// TestSpend_OverBudgetBoundary verifies a spend a cent over the
// balance is refused without a loan and accepted with one.
func TestSpend_OverBudgetBoundary(t *testing.T) {
	l := New(baseTime)
	over := l.Balance.Add(d("0.01"))

	_, err := l.Spend(over, "food", "", false, baseTime)
	var refused *OverBudgetError
	assert.True(t, errors.As(err, &refused))
	assert.True(t, l.Balance.Equal(d("10")), "refused spend must not mutate")
	assert.Equal(t, 0, len(l.History))

	_, err = l.Spend(over, "food", "", true, baseTime)
	assert.NoError(t, err)
	assert.True(t, l.Balance.Equal(d("-0.01")), "loan spend must go negative, got %s", l.Balance)
	assert.Equal(t, 1, len(l.History))
}

// TestSpend_ExactBalance verifies spending the exact balance is
// allowed without a loan.
func TestSpend_ExactBalance(t *testing.T) {
	l := New(baseTime)
	_, err := l.Spend(d("10"), "rent", "", false, baseTime)
	assert.NoError(t, err)
	assert.True(t, l.Balance.Equal(decimal.Zero))
}

// TestUndoRedo_Inverse verifies redo(undo(L)) == L.
func TestUndoRedo_Inverse(t *testing.T) {
	l := New(baseTime)
	_, err := l.Spend(d("3"), "food", "", false, baseTime)
	assert.NoError(t, err)
	_, err = l.Spend(d("2"), "books", "", false, baseTime.Add(time.Minute))
	assert.NoError(t, err)

	before := l.Clone()

	undone, err := l.Undo()
	assert.NoError(t, err)
	assert.Equal(t, "books", undone.Reason)
	assert.True(t, l.Balance.Equal(d("7")))
	assert.Equal(t, 1, len(l.History))
	assert.Equal(t, 1, len(l.RedoStack))

	redone, err := l.Redo()
	assert.NoError(t, err)
	assert.True(t, undone.Equal(redone))
	assert.True(t, l.Equal(before), "redo(undo(L)) must restore L")
}

// TestUndo_Empty verifies undo on an empty history is fatal.
func TestUndo_Empty(t *testing.T) {
	l := New(baseTime)
	_, err := l.Undo()
	assert.IsError(t, err, ErrNothingToUndo)
}

// TestRedo_Empty verifies redo on an empty redo stack is fatal.
func TestRedo_Empty(t *testing.T) {
	l := New(baseTime)
	_, err := l.Redo()
	assert.IsError(t, err, ErrNothingToRedo)
}

// TestSpend_KeepsRedoStack verifies a new spend does not clear the
// redo lineage. A later redo can reinsert a stale entry; Verify's
// divergence window accounts for this.
func TestSpend_KeepsRedoStack(t *testing.T) {
	l := New(baseTime)
	_, err := l.Spend(d("3"), "food", "", false, baseTime)
	assert.NoError(t, err)
	_, err = l.Undo()
	assert.NoError(t, err)
	_, err = l.Spend(d("1"), "books", "", false, baseTime)
	assert.NoError(t, err)

	assert.Equal(t, 1, len(l.RedoStack))
}

// TestGarnish verifies a negative balance moves into debt and the
// balance resets to zero.
func TestGarnish(t *testing.T) {
	l := New(baseTime)
	_, err := l.Spend(d("14"), "rent", "", true, baseTime)
	assert.NoError(t, err)
	assert.True(t, l.Balance.Equal(d("-4")))

	moved, err := l.Garnish()
	assert.NoError(t, err)
	assert.True(t, moved.Equal(d("4")))
	assert.True(t, l.Balance.Equal(decimal.Zero))
	assert.True(t, l.Debt.Equal(d("4")))
	assert.True(t, l.TotalBalance().Equal(d("-4")))
}

// TestGarnish_NonNegative verifies garnish is a warning no-op when
// the balance is not negative.
func TestGarnish_NonNegative(t *testing.T) {
	l := New(baseTime)
	_, err := l.Garnish()
	assert.IsError(t, err, ErrNothingToGarnish)
	assert.True(t, l.Balance.Equal(d("10")))
	assert.True(t, l.Debt.Equal(decimal.Zero))
}
