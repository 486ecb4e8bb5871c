package ledger

// RecordInvestment accumulates an investor's allocation against an
// asset and keeps the basket's invested total in sync. The per-asset
// cap is the load-bearing check: total allocations may never exceed the
// asset's face amount, and check plus increment happen atomically under
// the ledger lock so concurrent investments cannot both pass against a
// stale total.
func (l *Ledger) RecordInvestment(assetID, investor string, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[assetID]
	if !ok {
		return ErrAssetNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	allocs := l.allocations[assetID]
	var total int64
	for _, v := range allocs {
		total += v
	}
	// Written as a subtraction so the check cannot wrap when total is
	// already near the face amount and amount is huge.
	if amount > a.FaceAmount-total {
		return ErrOverInvestment
	}

	if allocs == nil {
		allocs = make(map[string]int64)
		l.allocations[assetID] = allocs
	}
	if _, seen := allocs[investor]; !seen {
		l.investorOrder[assetID] = append(l.investorOrder[assetID], investor)
	}
	allocs[investor] += amount

	l.baskets[a.BasketID].investedAmount += amount

	l.publish(Event{
		Type:     EventInvestmentRecorded,
		AssetID:  assetID,
		BasketID: a.BasketID,
		Investor: investor,
		Amount:   amount,
		At:       l.now(),
	})
	return nil
}

// InvestorAllocation returns the cumulative amount the investor has
// recorded against the asset. Zero for unknown pairs; the asset itself
// must exist.
func (l *Ledger) InvestorAllocation(assetID, investor string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[assetID]; !ok {
		return 0, ErrAssetNotFound
	}
	return l.allocations[assetID][investor], nil
}
