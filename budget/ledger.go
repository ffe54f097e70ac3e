// Package budget implements the spending ledger: a balance that
// accrues over time at a configurable daily rate, an append-only
// spend history with undo/redo, per-category cost multipliers
// ("cringe factors") linked through synonym groups, and debt
// garnishment.
//
// The ledger is a single persisted document. Each invocation of the
// tool loads a snapshot, mutates it in memory, and writes the whole
// document back; Verify decides whether that write is safe against
// whatever is currently persisted.
//
// Example usage:
//
//	l := budget.New(time.Now())
//	if err := l.Accrue(time.Now()); err != nil {
//	    log.Fatal(err)
//	}
//	item, err := l.Spend(decimal.NewFromInt(5), "food", "", false, time.Now())
package budget

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CurrentVersion is the ledger document schema version written on
// every store. Documents with a higher version are refused on load.
const CurrentVersion = 1

// DefaultRate is the per-day accrual amount used when the ledger does
// not carry an explicit rate.
var DefaultRate = decimal.NewFromInt(5)

// defaultBalance is the opening balance of a freshly created ledger.
var defaultBalance = decimal.NewFromInt(10)

// Ledger is the persisted aggregate: balance, debt, the two history
// stacks, the accrual rate, and the category tables.
type Ledger struct {
	// History holds committed spends, oldest first. It grows by one on
	// Spend and Redo and shrinks by one on Undo; nothing else touches it.
	History []HistoryItem `json:"history"`

	// RedoStack holds spends removed by Undo, most recently undone last.
	RedoStack []HistoryItem `json:"redo_stack"`

	// Balance may go negative only through a loan spend; Garnish resets
	// it to zero by converting the shortfall into Debt.
	Balance decimal.Decimal `json:"balance"`

	// Debt is repaid out of future accrual. Never negative.
	Debt decimal.Decimal `json:"debt"`

	// Rate is the per-day accrual amount. Nil means DefaultRate.
	Rate *decimal.Decimal `json:"rate"`

	// LastUpdated is the accrual watermark in milliseconds since epoch.
	LastUpdated int64 `json:"last_updated"`

	// CringeFactors maps a case-folded category keyword to the
	// multiplier applied to spends in that category.
	CringeFactors map[string]decimal.Decimal `json:"cringe_factors,omitempty"`

	// Synonyms is an undirected adjacency between category keywords
	// that share one cringe factor. Each set is kept sorted and unique.
	Synonyms map[string][]string `json:"synonyms,omitempty"`

	// Version marks the document schema.
	Version int `json:"version"`
}

// HistoryItem records one committed spend. Amount is the scaled value
// actually deducted, after the category multiplier was applied.
type HistoryItem struct {
	Amount   decimal.Decimal `json:"amount"`
	Reason   string          `json:"reason"`
	Specific string          `json:"specific,omitempty"`
	Time     int64           `json:"time"`
}

// Equal reports structural equality on all fields.
func (h HistoryItem) Equal(other HistoryItem) bool {
	return h.Amount.Equal(other.Amount) &&
		h.Reason == other.Reason &&
		h.Specific == other.Specific &&
		h.Time == other.Time
}

// New creates a fresh ledger with the default opening balance and
// rate, its accrual watermark set to now.
func New(now time.Time) *Ledger {
	rate := DefaultRate
	return &Ledger{
		History:     []HistoryItem{},
		RedoStack:   []HistoryItem{},
		Balance:     defaultBalance,
		Debt:        decimal.Zero,
		Rate:        &rate,
		LastUpdated: now.UnixMilli(),
		Version:     CurrentVersion,
	}
}

// EffectiveRate returns the ledger's rate, or DefaultRate when unset.
func (l *Ledger) EffectiveRate() decimal.Decimal {
	if l.Rate == nil {
		return DefaultRate
	}
	return *l.Rate
}

// SetRate stores an explicit accrual rate.
func (l *Ledger) SetRate(rate decimal.Decimal) {
	l.Rate = &rate
}

// TotalBalance returns balance minus debt, the only externally
// meaningful spendable figure once debt exists.
func (l *Ledger) TotalBalance() decimal.Decimal {
	return l.Balance.Sub(l.Debt)
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := *l
	c.History = append([]HistoryItem(nil), l.History...)
	c.RedoStack = append([]HistoryItem(nil), l.RedoStack...)
	if l.Rate != nil {
		rate := *l.Rate
		c.Rate = &rate
	}
	if l.CringeFactors != nil {
		c.CringeFactors = make(map[string]decimal.Decimal, len(l.CringeFactors))
		for k, v := range l.CringeFactors {
			c.CringeFactors[k] = v
		}
	}
	if l.Synonyms != nil {
		c.Synonyms = make(map[string][]string, len(l.Synonyms))
		for k, v := range l.Synonyms {
			c.Synonyms[k] = append([]string(nil), v...)
		}
	}
	return &c
}

// Equal reports whether two ledgers are structurally equal on every
// field except the accrual watermark. Two snapshots aligned to the
// same point in time compare equal even when they were updated at
// different wall-clock instants.
func (l *Ledger) Equal(other *Ledger) bool {
	if l.Version != other.Version {
		return false
	}
	if !l.Balance.Equal(other.Balance) || !l.Debt.Equal(other.Debt) {
		return false
	}
	if !l.EffectiveRate().Equal(other.EffectiveRate()) {
		return false
	}
	if !itemsEqual(l.History, other.History) || !itemsEqual(l.RedoStack, other.RedoStack) {
		return false
	}
	if !factorsEqual(l.CringeFactors, other.CringeFactors) {
		return false
	}
	return synonymsEqual(l.Synonyms, other.Synonyms)
}

func itemsEqual(a, b []HistoryItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func factorsEqual(a, b map[string]decimal.Decimal) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

func synonymsEqual(a, b map[string][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || len(v) != len(w) {
			return false
		}
		for i := range v {
			if v[i] != w[i] {
				return false
			}
		}
	}
	return true
}

// Marshal encodes the ledger as its persisted JSON document.
func (l *Ledger) Marshal() ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLedger decodes a persisted ledger document. It fails on
// documents written by a newer schema version; older documents load
// and are rewritten at CurrentVersion on the next store.
func UnmarshalLedger(data []byte) (*Ledger, error) {
	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("invalid ledger document: %w", err)
	}
	if l.Version > CurrentVersion {
		return nil, &UnknownVersionError{Version: l.Version, Supported: CurrentVersion}
	}
	l.Version = CurrentVersion
	return &l, nil
}
