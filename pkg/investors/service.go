package investors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)

type InvestorService interface {
	Register(ctx context.Context, name, email, password string) (Investor, error)
	GetInvestor(ctx context.Context, uuid string) (Investor, error)
	// IsVerified is the capability check consumed before investment
	// recording; the ledger never evaluates it itself.
	IsVerified(ctx context.Context, uuid string) (bool, error)
}

type investorService struct {
	repo InvestorRepository
}

func NewInvestorService(repo InvestorRepository) InvestorService {
	return &investorService{repo: repo}
}

func (s *investorService) Register(ctx context.Context, name, email, password string) (Investor, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 8 {
		return Investor{}, ErrInvalidPassword
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Investor{}, fmt.Errorf("hash password: %w", err)
	}

	inv, err := s.repo.CreateInvestor(ctx, name, email, string(hashBytes), uuid.NewString())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Investor{}, ErrEmailTaken
		}
		return Investor{}, err
	}
	return inv, nil
}

func (s *investorService) GetInvestor(ctx context.Context, uuid string) (Investor, error) {
	return s.repo.GetInvestorByUUID(ctx, uuid)
}

func (s *investorService) IsVerified(ctx context.Context, uuid string) (bool, error) {
	inv, err := s.repo.GetInvestorByUUID(ctx, uuid)
	if err != nil {
		return false, err
	}
	return inv.Verified(), nil
}
