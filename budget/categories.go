package budget

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var neutralFactor = decimal.NewFromInt(1)

// EffectiveMultiplier resolves a spend category to its cost
// multiplier. Keywords are case-folded. A factor stored under the
// keyword itself wins; otherwise its synonym set is scanned in
// lexicographic order and the first stored factor wins, which keeps
// resolution deterministic when several synonyms carry distinct
// factors. Absent any stored factor the multiplier is neutral (1).
func (l *Ledger) EffectiveMultiplier(category string) decimal.Decimal {
	key := foldKeyword(category)
	if factor, ok := l.CringeFactors[key]; ok {
		return factor
	}
	for _, syn := range l.Synonyms[key] {
		if factor, ok := l.CringeFactors[syn]; ok {
			return factor
		}
	}
	return neutralFactor
}

// SetCringe stores a cost multiplier for a category keyword. When the
// keyword or one of its synonyms already carries a factor, that entry
// is overwritten so a synonym group keeps a single stored factor.
// Returns the keyword the factor was stored under.
func (l *Ledger) SetCringe(keyword string, factor decimal.Decimal) string {
	key := foldKeyword(keyword)
	target := key
	if _, ok := l.CringeFactors[key]; !ok {
		for _, syn := range l.Synonyms[key] {
			if _, ok := l.CringeFactors[syn]; ok {
				target = syn
				break
			}
		}
	}
	if l.CringeFactors == nil {
		l.CringeFactors = map[string]decimal.Decimal{}
	}
	l.CringeFactors[target] = factor
	return target
}

// SetSynonym links two category keywords so they share one cringe
// factor. The adjacency is undirected; linking a keyword to itself is
// a no-op.
func (l *Ledger) SetSynonym(a, b string) {
	ka, kb := foldKeyword(a), foldKeyword(b)
	if ka == kb {
		return
	}
	if l.Synonyms == nil {
		l.Synonyms = map[string][]string{}
	}
	l.Synonyms[ka] = insertSorted(l.Synonyms[ka], kb)
	l.Synonyms[kb] = insertSorted(l.Synonyms[kb], ka)
}

// SynonymsOf returns the synonym set of a keyword, sorted.
func (l *Ledger) SynonymsOf(keyword string) []string {
	return l.Synonyms[foldKeyword(keyword)]
}

func insertSorted(set []string, keyword string) []string {
	i, found := slices.BinarySearch(set, keyword)
	if found {
		return set
	}
	return slices.Insert(set, i, keyword)
}

func foldKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
