package assets

import (
	"context"

	"flowledger/pkg/ledger"
)

// AssetService fronts the ledger's asset lifecycle operations. The
// ledger never blocks, so the context is accepted for interface
// symmetry with the rest of the service layer and ignored.
type AssetService interface {
	CreateAsset(ctx context.Context, input ledger.CreateAssetInput) (ledger.Asset, error)
	MarkFunded(ctx context.Context, assetID string, unlockAmount int64) (ledger.Asset, error)
	ConfirmPayment(ctx context.Context, assetID string, amount int64) (ledger.Asset, []ledger.Share, error)
	UpdateRiskScore(ctx context.Context, assetID string, newScore int) (ledger.Asset, error)
	ReassignBasket(ctx context.Context, assetID, newBasketID string) (ledger.Asset, error)
	GetAssetInfo(ctx context.Context, assetID string) (ledger.Asset, error)
	ListAssets(ctx context.Context) []ledger.Asset
}

type assetService struct {
	ledger *ledger.Ledger
}

func NewAssetService(l *ledger.Ledger) AssetService {
	return &assetService{ledger: l}
}

func (s *assetService) CreateAsset(_ context.Context, input ledger.CreateAssetInput) (ledger.Asset, error) {
	return s.ledger.CreateAsset(input)
}

func (s *assetService) MarkFunded(_ context.Context, assetID string, unlockAmount int64) (ledger.Asset, error) {
	return s.ledger.MarkFunded(assetID, unlockAmount)
}

func (s *assetService) ConfirmPayment(_ context.Context, assetID string, amount int64) (ledger.Asset, []ledger.Share, error) {
	return s.ledger.ConfirmPayment(assetID, amount)
}

func (s *assetService) UpdateRiskScore(_ context.Context, assetID string, newScore int) (ledger.Asset, error) {
	return s.ledger.UpdateRiskScore(assetID, newScore)
}

func (s *assetService) ReassignBasket(_ context.Context, assetID, newBasketID string) (ledger.Asset, error) {
	return s.ledger.ReassignBasket(assetID, newBasketID)
}

func (s *assetService) GetAssetInfo(_ context.Context, assetID string) (ledger.Asset, error) {
	return s.ledger.GetAssetInfo(assetID)
}

func (s *assetService) ListAssets(_ context.Context) []ledger.Asset {
	return s.ledger.ListAssets()
}
