package budget

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

// TestEffectiveMultiplier_Neutral verifies unknown categories resolve
// to the neutral multiplier.
func TestEffectiveMultiplier_Neutral(t *testing.T) {
	l := New(baseTime)
	assert.True(t, l.EffectiveMultiplier("anything").Equal(d("1")))
}

// TestEffectiveMultiplier_ViaSynonym verifies a factor stored on a
// synonym applies to the queried keyword.
func TestEffectiveMultiplier_ViaSynonym(t *testing.T) {
	l := New(baseTime)
	l.SetSynonym("coffee", "cafe")
	l.SetCringe("cafe", d("1.5"))
	assert.True(t, l.EffectiveMultiplier("coffee").Equal(d("1.5")))
	assert.True(t, l.EffectiveMultiplier("cafe").Equal(d("1.5")))
}

// TestEffectiveMultiplier_CaseFolded verifies keywords are matched
// case-insensitively everywhere.
func TestEffectiveMultiplier_CaseFolded(t *testing.T) {
	l := New(baseTime)
	l.SetCringe("Coffee", d("2"))
	assert.True(t, l.EffectiveMultiplier("COFFEE").Equal(d("2")))

	l.SetSynonym("Coffee", "ESPRESSO")
	assert.True(t, l.EffectiveMultiplier("espresso").Equal(d("2")))
}

// TestEffectiveMultiplier_Deterministic verifies resolution order when
// several members of a group carry distinct factors: the queried
// keyword's own factor wins, otherwise the lexicographically first
// synonym with a factor.
func TestEffectiveMultiplier_Deterministic(t *testing.T) {
	l := New(baseTime)
	l.SetSynonym("drinks", "beer")
	l.SetSynonym("drinks", "wine")
	// Plant conflicting factors directly, bypassing SetCringe's
	// consolidation.
	l.CringeFactors = map[string]decimal.Decimal{
		"wine": d("3"),
		"beer": d("2"),
	}

	assert.True(t, l.EffectiveMultiplier("drinks").Equal(d("2")), "beer sorts before wine")
	assert.True(t, l.EffectiveMultiplier("beer").Equal(d("2")), "own factor wins")
	assert.True(t, l.EffectiveMultiplier("wine").Equal(d("3")), "own factor wins")
}

// TestSetCringe_Consolidates verifies that setting a factor through
// any member of a synonym group overwrites the group's existing entry
// instead of adding a second one.
func TestSetCringe_Consolidates(t *testing.T) {
	l := New(baseTime)
	l.SetSynonym("coffee", "cafe")
	assert.Equal(t, "cafe", l.SetCringe("cafe", d("1.5")))

	// Updating via the other member lands on the same entry.
	assert.Equal(t, "cafe", l.SetCringe("coffee", d("2")))
	assert.Equal(t, 1, len(l.CringeFactors))
	assert.True(t, l.EffectiveMultiplier("coffee").Equal(d("2")))
}

// TestSetCringe_OwnEntryPreferred verifies an existing factor under
// the keyword itself is overwritten in place.
func TestSetCringe_OwnEntryPreferred(t *testing.T) {
	l := New(baseTime)
	l.SetCringe("food", d("1.2"))
	assert.Equal(t, "food", l.SetCringe("food", d("1.4")))
	assert.True(t, l.CringeFactors["food"].Equal(d("1.4")))
}

// TestSetSynonym_Undirected verifies both sides of the adjacency are
// stored, sorted and without duplicates, and self-links are dropped.
func TestSetSynonym_Undirected(t *testing.T) {
	l := New(baseTime)
	l.SetSynonym("coffee", "cafe")
	l.SetSynonym("coffee", "cafe")
	l.SetSynonym("coffee", "espresso")
	l.SetSynonym("coffee", "coffee")

	assert.Equal(t, []string{"cafe", "espresso"}, l.SynonymsOf("coffee"))
	assert.Equal(t, []string{"coffee"}, l.SynonymsOf("cafe"))
	assert.Equal(t, []string{"coffee"}, l.SynonymsOf("espresso"))
}

// TestSpend_AppliesMultiplier verifies the cringe factor scales the
// recorded amount, not just the deduction.
func TestSpend_AppliesMultiplier(t *testing.T) {
	l := New(baseTime)
	l.SetCringe("games", d("2"))
	item, err := l.Spend(d("4"), "games", "", false, baseTime)
	assert.NoError(t, err)
	assert.True(t, item.Amount.Equal(d("8")), "want scaled amount 8, got %s", item.Amount)
	assert.True(t, l.Balance.Equal(d("2")), "want balance 2, got %s", l.Balance)
}
