package budget

import "time"

// Verify decides whether local, the ledger mutated by this
// invocation, may safely overwrite remote, the ledger fetched from
// the store immediately before writing. A nil return means the write
// is safe; otherwise the returned error classifies the refusal.
//
// There is no locking against the store, so this is a bounded
// after-the-fact race detector, not a merge: the only divergences it
// accepts are a single undo or a single spend performed locally on
// top of what the remote already holds, verified against the total
// balance. Anything wider is refused and the local mutation is meant
// to be discarded.
func Verify(local, remote *Ledger, now time.Time) error {
	// Align both sides to the same point in time, using local's rate.
	aligned := remote.Clone()
	aligned.Rate = local.Rate
	if err := aligned.Accrue(now); err != nil {
		return err
	}

	if local.Equal(aligned) {
		return nil
	}

	historyDelta := len(aligned.History) - len(local.History)
	redoDelta := len(aligned.RedoStack) - len(local.RedoStack)
	if abs(historyDelta) > 2 || abs(redoDelta) > 2 {
		return &DivergeError{HistoryDelta: historyDelta, RedoDelta: redoDelta}
	}

	if len(aligned.History) > 0 && len(aligned.History) > len(local.History) {
		// Remote holds exactly one entry local does not: local must have
		// undone it. Adding it back must restore the local balance.
		if !itemsEqual(local.History, aligned.History[:len(aligned.History)-1]) {
			return &IncompatibleError{}
		}
		last := aligned.History[len(aligned.History)-1]
		aligned.Balance = aligned.Balance.Add(last.Amount)
		if local.TotalBalance().Equal(aligned.TotalBalance()) {
			return nil
		}
		return &BalanceMismatchError{NewEntry: false, Expected: local.TotalBalance(), Found: aligned.TotalBalance()}
	}

	if len(local.History) > 0 && len(local.History) > len(aligned.History) {
		// Local holds exactly one new entry: it must account for the
		// difference between the balances.
		if !itemsEqual(aligned.History, local.History[:len(local.History)-1]) {
			return &IncompatibleError{}
		}
		last := local.History[len(local.History)-1]
		aligned.Balance = aligned.Balance.Sub(last.Amount)
		if local.TotalBalance().Equal(aligned.TotalBalance()) {
			return nil
		}
		return &BalanceMismatchError{NewEntry: true, Expected: local.TotalBalance(), Found: aligned.TotalBalance()}
	}

	// Same history lengths but not structurally equal. Diverging
	// content is incompatible; matching content with matching totals
	// means only category configuration drifted and commits.
	if !itemsEqual(local.History, aligned.History) {
		return &IncompatibleError{}
	}
	if local.TotalBalance().Equal(aligned.TotalBalance()) {
		return nil
	}

	return &UnclassifiedError{}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
