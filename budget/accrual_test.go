package budget

import (
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

// Noon keeps the local calendar date stable across timezone offsets.
var baseTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestAccrue_ZeroElapsed verifies accrual is a no-op when no calendar
// day boundary has passed.
func TestAccrue_ZeroElapsed(t *testing.T) {
	l := New(baseTime)
	assert.NoError(t, l.Accrue(baseTime.Add(3*time.Hour)))
	assert.True(t, l.Balance.Equal(d("10")), "balance changed on zero elapsed days: %s", l.Balance)
	assert.True(t, l.Debt.Equal(decimal.Zero))
}

// TestAccrue_ThreeDays verifies the fresh-ledger scenario: balance 10,
// rate 5, three elapsed days, no debt.
func TestAccrue_ThreeDays(t *testing.T) {
	l := New(baseTime)
	assert.NoError(t, l.Accrue(baseTime.AddDate(0, 0, 3)))
	assert.True(t, l.Balance.Equal(d("25")), "want 25, got %s", l.Balance)
}

// TestAccrue_ClockSkew verifies that a now earlier than the stored
// watermark is a fatal precondition violation.
func TestAccrue_ClockSkew(t *testing.T) {
	l := New(baseTime)
	err := l.Accrue(baseTime.AddDate(0, 0, -1))
	assert.Error(t, err)

	var skew *ClockSkewError
	assert.True(t, errors.As(err, &skew))
	// No partial mutation.
	assert.True(t, l.Balance.Equal(d("10")))
	assert.Equal(t, l.LastUpdated, baseTime.UnixMilli())
}

// TestAccrue_LargeDebt verifies that a debt bigger than half the
// gross absorbs exactly half, and the balance gains the other half.
func TestAccrue_LargeDebt(t *testing.T) {
	l := New(baseTime)
	l.Debt = d("100")
	assert.NoError(t, l.Accrue(baseTime.AddDate(0, 0, 2))) // gross 10
	assert.True(t, l.Debt.Equal(d("95")), "want debt 95, got %s", l.Debt)
	assert.True(t, l.Balance.Equal(d("15")), "want balance 15, got %s", l.Balance)
}

// TestAccrue_SmallDebtCleared verifies that a debt smaller than half
// the gross is cleared and the remainder flows to the balance.
func TestAccrue_SmallDebtCleared(t *testing.T) {
	l := New(baseTime)
	l.Debt = d("3")
	assert.NoError(t, l.Accrue(baseTime.AddDate(0, 0, 2))) // gross 10
	assert.True(t, l.Debt.Equal(decimal.Zero), "want debt 0, got %s", l.Debt)
	assert.True(t, l.Balance.Equal(d("17")), "want balance 17, got %s", l.Balance)
}

// TestAccrue_DebtMonotonicity verifies debt never grows and never
// goes negative under repeated accrual.
func TestAccrue_DebtMonotonicity(t *testing.T) {
	l := New(baseTime)
	l.Debt = d("12.5")
	now := baseTime
	for i := 0; i < 6; i++ {
		prev := l.Debt
		now = now.AddDate(0, 0, 1)
		assert.NoError(t, l.Accrue(now))
		assert.True(t, l.Debt.LessThanOrEqual(prev), "debt grew: %s -> %s", prev, l.Debt)
		assert.False(t, l.Debt.IsNegative(), "debt went negative: %s", l.Debt)
	}
	assert.True(t, l.Debt.Equal(decimal.Zero))
}

// TestAccrue_CustomRate verifies the stored rate overrides the default.
func TestAccrue_CustomRate(t *testing.T) {
	l := New(baseTime)
	l.SetRate(d("2.5"))
	assert.NoError(t, l.Accrue(baseTime.AddDate(0, 0, 4)))
	assert.True(t, l.Balance.Equal(d("20")), "want 20, got %s", l.Balance)
}
