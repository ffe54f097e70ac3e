package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Accrue advances the balance by rate * elapsed whole calendar days
// since the ledger was last updated, then moves the watermark to now.
//
// While debt is outstanding, at most half of the gross accrual is
// diverted to repayment per call: a debt larger than half the gross
// absorbs exactly half, a smaller debt is cleared and the remainder
// flows to the balance.
//
// Call exactly once per loaded snapshot, before any other mutation.
// Calling with zero elapsed days is a no-op; calling twice with a
// nonzero elapsed double-applies the accrual.
func (l *Ledger) Accrue(now time.Time) error {
	current := daysSinceEpoch(now)
	last := daysSinceEpoch(time.UnixMilli(l.LastUpdated))
	if current < last {
		return &ClockSkewError{LastUpdated: l.LastUpdated, Now: now.UnixMilli()}
	}

	gross := l.EffectiveRate().Mul(decimal.NewFromInt(int64(current - last)))
	if l.Debt.IsPositive() {
		half := gross.Div(two)
		if l.Debt.GreaterThan(half) {
			l.Debt = l.Debt.Sub(half)
			gross = half
		} else {
			gross = gross.Sub(l.Debt)
			l.Debt = decimal.Zero
		}
	}
	l.Balance = l.Balance.Add(gross)
	l.LastUpdated = now.UnixMilli()
	return nil
}

// daysSinceEpoch counts whole calendar days in local time, so that
// accrual ticks over at local midnight rather than 24h boundaries.
func daysSinceEpoch(t time.Time) int {
	y, m, d := t.In(time.Local).Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
