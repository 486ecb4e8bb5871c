package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordInvestment_Accumulates(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)

	require.NoError(t, l.RecordInvestment("A1", "X", 200))
	require.NoError(t, l.RecordInvestment("A1", "X", 300))

	got, err := l.InvestorAllocation("A1", "X")
	require.NoError(t, err)
	require.Equal(t, int64(500), got)

	require.Equal(t, int64(500), l.GetBasketStats("B1").InvestedAmount)
	require.NoError(t, l.Audit())
}

func TestRecordInvestment_ExactFaceAmountThenOverflow(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)

	require.NoError(t, l.RecordInvestment("A1", "X", 1000))

	err = l.RecordInvestment("A1", "Y", 1)
	require.ErrorIs(t, err, ErrOverInvestment)

	// The failed call must leave no trace.
	got, err := l.InvestorAllocation("A1", "Y")
	require.NoError(t, err)
	require.Zero(t, got)
	require.Equal(t, int64(1000), l.GetBasketStats("B1").InvestedAmount)
	require.NoError(t, l.Audit())
}

func TestRecordInvestment_CapAtMaxFaceAmount(t *testing.T) {
	l := New()
	in := validInput()
	in.FaceAmount = math.MaxInt64
	_, err := l.CreateAsset(in)
	require.NoError(t, err)

	require.NoError(t, l.RecordInvestment("A1", "X", math.MaxInt64))

	// total+amount would wrap negative here and slip past the cap if
	// the check were written as an addition.
	require.ErrorIs(t, l.RecordInvestment("A1", "Y", math.MaxInt64), ErrOverInvestment)
	require.ErrorIs(t, l.RecordInvestment("A1", "Y", 1), ErrOverInvestment)

	got, err := l.InvestorAllocation("A1", "X")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), got)
	require.NoError(t, l.Audit())
}

func TestRecordInvestment_AssetNotFound(t *testing.T) {
	l := New()
	err := l.RecordInvestment("missing", "X", 100)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestRecordInvestment_NonPositiveAmount(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)

	require.ErrorIs(t, l.RecordInvestment("A1", "X", 0), ErrInvalidAmount)
	require.ErrorIs(t, l.RecordInvestment("A1", "X", -5), ErrInvalidAmount)
}

func TestInvestorAllocation_UnknownInvestorIsZero(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)

	got, err := l.InvestorAllocation("A1", "nobody")
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestInvestorAllocation_AssetNotFound(t *testing.T) {
	l := New()
	_, err := l.InvestorAllocation("missing", "X")
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestRecordInvestment_CapIsPerAsset(t *testing.T) {
	l := New()
	in := validInput()
	_, err := l.CreateAsset(in)
	require.NoError(t, err)
	in.AssetID = "A2"
	_, err = l.CreateAsset(in)
	require.NoError(t, err)

	// Filling A1 must not consume A2's capacity.
	require.NoError(t, l.RecordInvestment("A1", "X", 1000))
	require.NoError(t, l.RecordInvestment("A2", "X", 1000))
	require.ErrorIs(t, l.RecordInvestment("A2", "Y", 1), ErrOverInvestment)

	require.Equal(t, int64(2000), l.GetBasketStats("B1").InvestedAmount)
	require.NoError(t, l.Audit())
}
