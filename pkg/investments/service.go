package investments

import (
	"context"
	"errors"

	"flowledger/pkg/investors"
	"flowledger/pkg/ledger"
)

var ErrInvestorNotVerified = errors.New("investor is not verified")

// InvestmentService gates investment recording on the host-side
// verification check before handing off to the ledger. The check is a
// plain boolean consumed here; the ledger stays authorization-agnostic.
type InvestmentService interface {
	RecordInvestment(ctx context.Context, assetID, investorUUID string, amount int64) error
	GetAllocation(ctx context.Context, assetID, investorUUID string) (int64, error)
}

type investmentService struct {
	ledger    *ledger.Ledger
	investors investors.InvestorService
}

func NewInvestmentService(l *ledger.Ledger, inv investors.InvestorService) InvestmentService {
	return &investmentService{ledger: l, investors: inv}
}

func (s *investmentService) RecordInvestment(ctx context.Context, assetID, investorUUID string, amount int64) error {
	verified, err := s.investors.IsVerified(ctx, investorUUID)
	if err != nil {
		return err
	}
	if !verified {
		return ErrInvestorNotVerified
	}
	return s.ledger.RecordInvestment(assetID, investorUUID, amount)
}

func (s *investmentService) GetAllocation(_ context.Context, assetID, investorUUID string) (int64, error) {
	return s.ledger.InvestorAllocation(assetID, investorUUID)
}
