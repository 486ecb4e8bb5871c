package pool

import (
	"context"

	"flowledger/pkg/ledger"
)

// PoolService fronts the escrow operations. Deposits and operator
// withdrawals go through here; funding advances debit the pool via the
// asset flow instead.
type PoolService interface {
	Deposit(ctx context.Context, amount int64) (ledger.PoolStats, error)
	Release(ctx context.Context, amount int64) (ledger.PoolStats, error)
	GetPoolStats(ctx context.Context) ledger.PoolStats
}

type poolService struct {
	ledger *ledger.Ledger
}

func NewPoolService(l *ledger.Ledger) PoolService {
	return &poolService{ledger: l}
}

func (s *poolService) Deposit(_ context.Context, amount int64) (ledger.PoolStats, error) {
	return s.ledger.Deposit(amount)
}

func (s *poolService) Release(_ context.Context, amount int64) (ledger.PoolStats, error) {
	return s.ledger.Release(amount)
}

func (s *poolService) GetPoolStats(_ context.Context) ledger.PoolStats {
	return s.ledger.GetPoolStats()
}
