package ledger

import "fmt"

// GetProtocolStats returns the incrementally maintained aggregates.
func (l *Ledger) GetProtocolStats() ProtocolStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counters
}

// Audit recomputes every derived aggregate from the primary records and
// returns an error describing the first inconsistency found. A healthy
// ledger always passes; a failure means a bug in a mutation path, not
// bad caller input.
func (l *Ledger) Audit() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.deposited < 0 || l.released < 0 || l.deposited-l.released < 0 {
		return fmt.Errorf("pool balance negative: deposited=%d released=%d", l.deposited, l.released)
	}

	var totalFunded, totalPaid int64
	for id, a := range l.assets {
		if a.Unlockable < 0 || a.Unlockable > a.FaceAmount {
			return fmt.Errorf("asset %s: unlockable %d outside [0, %d]", id, a.Unlockable, a.FaceAmount)
		}
		if a.PaidAmount < 0 || a.PaidAmount > a.FaceAmount {
			return fmt.Errorf("asset %s: paid amount %d outside [0, %d]", id, a.PaidAmount, a.FaceAmount)
		}
		if a.Paid && !a.Funded {
			return fmt.Errorf("asset %s: paid but never funded", id)
		}
		if a.RiskScore < 0 || a.RiskScore > 100 {
			return fmt.Errorf("asset %s: risk score %d out of range", id, a.RiskScore)
		}
		if a.Funded {
			totalFunded += a.Unlockable
		}
		totalPaid += a.PaidAmount

		var allocated int64
		for _, v := range l.allocations[id] {
			// Checked before accumulating so a breach is caught instead
			// of wrapping the running sum.
			if v < 0 || v > a.FaceAmount-allocated {
				return fmt.Errorf("asset %s: allocations exceed face amount %d", id, a.FaceAmount)
			}
			allocated += v
		}
	}

	if l.counters.TotalAssets != int64(len(l.assets)) {
		return fmt.Errorf("total assets counter %d != %d records", l.counters.TotalAssets, len(l.assets))
	}
	if l.counters.TotalFunded != totalFunded {
		return fmt.Errorf("total funded counter %d != recomputed %d", l.counters.TotalFunded, totalFunded)
	}
	if l.counters.TotalPaid != totalPaid {
		return fmt.Errorf("total paid counter %d != recomputed %d", l.counters.TotalPaid, totalPaid)
	}

	for basketID, b := range l.baskets {
		var value, invested int64
		for _, assetID := range b.assetIDs {
			a, ok := l.assets[assetID]
			if !ok {
				return fmt.Errorf("basket %s: member %s has no asset record", basketID, assetID)
			}
			if a.BasketID != basketID {
				return fmt.Errorf("basket %s: member %s claims basket %s", basketID, assetID, a.BasketID)
			}
			value += a.FaceAmount
			for _, v := range l.allocations[assetID] {
				invested += v
			}
		}
		if b.totalValue != value {
			return fmt.Errorf("basket %s: total value %d != recomputed %d", basketID, b.totalValue, value)
		}
		if b.investedAmount != invested {
			return fmt.Errorf("basket %s: invested amount %d != recomputed %d", basketID, b.investedAmount, invested)
		}
		if b.investedAmount > b.totalValue {
			return fmt.Errorf("basket %s: invested %d exceeds total value %d", basketID, b.investedAmount, b.totalValue)
		}
	}

	return nil
}
