package ledger

// Deposit adds liquidity to the pool. Deposited only ever grows.
func (l *Ledger) Deposit(amount int64) (PoolStats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return PoolStats{}, ErrInvalidAmount
	}
	l.deposited += amount

	l.publish(Event{Type: EventPoolDeposited, Amount: amount, At: l.now()})
	return l.poolStats(), nil
}

// Release withdraws liquidity from the pool without funding an asset
// (operator withdrawal). Asset funding debits the pool through
// MarkFunded instead.
func (l *Ledger) Release(amount int64) (PoolStats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return PoolStats{}, ErrInvalidAmount
	}
	if l.deposited-l.released < amount {
		return PoolStats{}, ErrInsufficientPoolBalance
	}
	l.released += amount

	l.publish(Event{Type: EventPoolReleased, Amount: amount, At: l.now()})
	return l.poolStats(), nil
}

// GetPoolStats returns the escrow totals. Balance is recomputed from
// deposited and released on every read so it cannot drift.
func (l *Ledger) GetPoolStats() PoolStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.poolStats()
}

func (l *Ledger) poolStats() PoolStats {
	return PoolStats{
		Balance:   l.deposited - l.released,
		Deposited: l.deposited,
		Released:  l.released,
	}
}
