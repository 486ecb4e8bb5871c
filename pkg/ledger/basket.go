package ledger

// GetBasketStats returns the basket aggregates. Never fails: an unknown
// basket reads as empty.
func (l *Ledger) GetBasketStats(basketID string) BasketStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := BasketStats{BasketID: basketID}
	if b, ok := l.baskets[basketID]; ok {
		stats.TotalValue = b.totalValue
		stats.InvestedAmount = b.investedAmount
		stats.AssetCount = len(b.assetIDs)
	}
	return stats
}

// GetBasketAssets returns the member asset ids in insertion order as a
// snapshot copy.
func (l *Ledger) GetBasketAssets(basketID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.baskets[basketID]
	if !ok {
		return []string{}
	}
	out := make([]string, len(b.assetIDs))
	copy(out, b.assetIDs)
	return out
}
