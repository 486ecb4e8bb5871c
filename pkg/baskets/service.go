package baskets

import (
	"context"

	"flowledger/pkg/ledger"
)

// BasketService exposes the read-only basket aggregates. Baskets are
// created implicitly by asset enrollment, so there are no mutators
// here; membership truth lives with the assets.
type BasketService interface {
	GetBasketStats(ctx context.Context, basketID string) ledger.BasketStats
	GetBasketAssets(ctx context.Context, basketID string) []string
}

type basketService struct {
	ledger *ledger.Ledger
}

func NewBasketService(l *ledger.Ledger) BasketService {
	return &basketService{ledger: l}
}

func (s *basketService) GetBasketStats(_ context.Context, basketID string) ledger.BasketStats {
	return s.ledger.GetBasketStats(basketID)
}

func (s *basketService) GetBasketAssets(_ context.Context, basketID string) []string {
	return s.ledger.GetBasketAssets(basketID)
}
