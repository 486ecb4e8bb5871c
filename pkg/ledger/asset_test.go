package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validInput() CreateAssetInput {
	return CreateAssetInput{
		AssetID:      "A1",
		Originator:   "O1",
		FaceAmount:   1000,
		Unlockable:   800,
		RiskScore:    75,
		BasketID:     "B1",
		AssetType:    AssetTypeInvoice,
		DocumentHash: "H1",
	}
}

func TestCreateAsset_Success(t *testing.T) {
	l := New()

	a, err := l.CreateAsset(validInput())

	require.NoError(t, err)
	require.Equal(t, "A1", a.ID)
	require.False(t, a.Funded)
	require.False(t, a.Paid)
	require.Zero(t, a.PaidAmount)
	require.Equal(t, "H1", a.DocumentHash)

	stats := l.GetBasketStats("B1")
	require.Equal(t, int64(1000), stats.TotalValue)
	require.Zero(t, stats.InvestedAmount)
	require.Equal(t, 1, stats.AssetCount)
	require.Equal(t, []string{"A1"}, l.GetBasketAssets("B1"))
	require.NoError(t, l.Audit())
}

func TestCreateAsset_Duplicate(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)

	_, err = l.CreateAsset(validInput())
	require.ErrorIs(t, err, ErrDuplicateAsset)

	require.EqualValues(t, 1, l.GetProtocolStats().TotalAssets)
}

func TestCreateAsset_UnlockableAboveFace(t *testing.T) {
	l := New()
	in := validInput()
	in.Unlockable = 1001

	_, err := l.CreateAsset(in)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateAsset_UnlockableEqualsFace(t *testing.T) {
	l := New()
	in := validInput()
	in.Unlockable = in.FaceAmount

	_, err := l.CreateAsset(in)
	require.NoError(t, err)
}

func TestCreateAsset_NegativeAmounts(t *testing.T) {
	l := New()

	in := validInput()
	in.FaceAmount = -1
	_, err := l.CreateAsset(in)
	require.ErrorIs(t, err, ErrInvalidAmount)

	in = validInput()
	in.Unlockable = -1
	_, err = l.CreateAsset(in)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateAsset_RiskScoreOutOfRange(t *testing.T) {
	l := New()

	in := validInput()
	in.RiskScore = 101
	_, err := l.CreateAsset(in)
	require.ErrorIs(t, err, ErrInvalidRiskScore)

	in.RiskScore = -1
	_, err = l.CreateAsset(in)
	require.ErrorIs(t, err, ErrInvalidRiskScore)
}

func TestCreateAsset_InvalidType(t *testing.T) {
	l := New()
	in := validInput()
	in.AssetType = "equities"

	_, err := l.CreateAsset(in)
	require.ErrorIs(t, err, ErrInvalidAssetType)
}

func TestMarkFunded_Success(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)
	_, err = l.Deposit(800)
	require.NoError(t, err)

	a, err := l.MarkFunded("A1", 800)

	require.NoError(t, err)
	require.True(t, a.Funded)
	require.Equal(t, int64(800), a.Unlockable)
	require.Zero(t, l.GetPoolStats().Balance)
	require.Equal(t, int64(800), l.GetProtocolStats().TotalFunded)
	require.NoError(t, l.Audit())
}

func TestMarkFunded_AssetNotFound(t *testing.T) {
	l := New()
	_, err := l.MarkFunded("nope", 100)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestMarkFunded_Twice(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)
	_, err = l.Deposit(2000)
	require.NoError(t, err)

	_, err = l.MarkFunded("A1", 800)
	require.NoError(t, err)

	_, err = l.MarkFunded("A1", 800)
	require.ErrorIs(t, err, ErrAlreadyFunded)
	require.Equal(t, int64(1200), l.GetPoolStats().Balance)
}

func TestMarkFunded_InsufficientPool(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)
	_, err = l.Deposit(799)
	require.NoError(t, err)

	_, err = l.MarkFunded("A1", 800)
	require.ErrorIs(t, err, ErrInsufficientPoolBalance)

	a, err := l.GetAssetInfo("A1")
	require.NoError(t, err)
	require.False(t, a.Funded)
	require.Equal(t, int64(799), l.GetPoolStats().Balance)
}

func TestMarkFunded_UnlockAboveFace(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)
	_, err = l.Deposit(5000)
	require.NoError(t, err)

	_, err = l.MarkFunded("A1", 1001)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestUpdateRiskScore_Success(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)

	a, err := l.UpdateRiskScore("A1", 40)
	require.NoError(t, err)
	require.Equal(t, 40, a.RiskScore)
}

func TestUpdateRiskScore_OutOfRange(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)

	_, err = l.UpdateRiskScore("A1", 120)
	require.ErrorIs(t, err, ErrInvalidRiskScore)

	a, err := l.GetAssetInfo("A1")
	require.NoError(t, err)
	require.Equal(t, 75, a.RiskScore)
}

func TestUpdateRiskScore_FrozenAfterPaid(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)
	_, err = l.Deposit(800)
	require.NoError(t, err)
	_, err = l.MarkFunded("A1", 800)
	require.NoError(t, err)
	_, _, err = l.ConfirmPayment("A1", 1000)
	require.NoError(t, err)

	_, err = l.UpdateRiskScore("A1", 10)
	require.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestReassignBasket_Success(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)
	require.NoError(t, l.RecordInvestment("A1", "X", 300))

	a, err := l.ReassignBasket("A1", "B2")
	require.NoError(t, err)
	require.Equal(t, "B2", a.BasketID)

	b1 := l.GetBasketStats("B1")
	require.Zero(t, b1.TotalValue)
	require.Zero(t, b1.InvestedAmount)
	require.Zero(t, b1.AssetCount)

	b2 := l.GetBasketStats("B2")
	require.Equal(t, int64(1000), b2.TotalValue)
	require.Equal(t, int64(300), b2.InvestedAmount)
	require.Equal(t, []string{"A1"}, l.GetBasketAssets("B2"))
	require.NoError(t, l.Audit())
}

func TestReassignBasket_FrozenAfterFunding(t *testing.T) {
	l := New()
	_, err := l.CreateAsset(validInput())
	require.NoError(t, err)
	_, err = l.Deposit(800)
	require.NoError(t, err)
	_, err = l.MarkFunded("A1", 800)
	require.NoError(t, err)

	before1, before2 := l.GetBasketStats("B1"), l.GetBasketStats("B2")

	_, err = l.ReassignBasket("A1", "B2")
	require.ErrorIs(t, err, ErrAlreadyFunded)

	require.Equal(t, before1, l.GetBasketStats("B1"))
	require.Equal(t, before2, l.GetBasketStats("B2"))
}

func TestGetAssetInfo_NotFound(t *testing.T) {
	l := New()
	_, err := l.GetAssetInfo("missing")
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestListAssets_CreationOrder(t *testing.T) {
	l := New()
	for _, id := range []string{"A1", "A2", "A3"} {
		in := validInput()
		in.AssetID = id
		_, err := l.CreateAsset(in)
		require.NoError(t, err)
	}

	list := l.ListAssets()
	require.Len(t, list, 3)
	require.Equal(t, "A1", list[0].ID)
	require.Equal(t, "A3", list[2].ID)
}
