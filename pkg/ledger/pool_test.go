package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_DepositAndRelease(t *testing.T) {
	l := New()

	stats, err := l.Deposit(500)
	require.NoError(t, err)
	require.Equal(t, PoolStats{Balance: 500, Deposited: 500, Released: 0}, stats)

	stats, err = l.Release(200)
	require.NoError(t, err)
	require.Equal(t, PoolStats{Balance: 300, Deposited: 500, Released: 200}, stats)
	require.Equal(t, stats, l.GetPoolStats())
}

func TestPool_ReleaseBeyondBalance(t *testing.T) {
	l := New()
	_, err := l.Deposit(100)
	require.NoError(t, err)

	_, err = l.Release(101)
	require.ErrorIs(t, err, ErrInsufficientPoolBalance)
	require.Equal(t, int64(100), l.GetPoolStats().Balance)
}

func TestPool_NonPositiveAmounts(t *testing.T) {
	l := New()

	_, err := l.Deposit(0)
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = l.Deposit(-10)
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = l.Release(0)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPool_MonotonicTotals(t *testing.T) {
	l := New()

	for i := 0; i < 5; i++ {
		_, err := l.Deposit(10)
		require.NoError(t, err)
	}
	_, err := l.Release(30)
	require.NoError(t, err)

	stats := l.GetPoolStats()
	require.Equal(t, int64(50), stats.Deposited)
	require.Equal(t, int64(30), stats.Released)
	require.Equal(t, int64(20), stats.Balance)
	require.NoError(t, l.Audit())
}
