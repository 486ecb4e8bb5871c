package investors

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInvestorRepository struct {
	mock.Mock
}

func (m *mockInvestorRepository) CreateInvestor(ctx context.Context, name, email, passwordHash, uuid string) (Investor, error) {
	args := m.Called(ctx, name, email, passwordHash, uuid)
	inv, _ := args.Get(0).(Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepository) GetInvestorByUUID(ctx context.Context, uuid string) (Investor, error) {
	args := m.Called(ctx, uuid)
	inv, _ := args.Get(0).(Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepository) GetInvestorByEmail(ctx context.Context, email string) (Investor, error) {
	args := m.Called(ctx, email)
	inv, _ := args.Get(0).(Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepository) MarkVerifiedByEmail(ctx context.Context, email string, ts time.Time) error {
	args := m.Called(ctx, email, ts)
	return args.Error(0)
}

func TestInvestorService_Register_HashesAndLowercases(t *testing.T) {
	repo := new(mockInvestorRepository)
	service := NewInvestorService(repo)

	repo.On("CreateInvestor", mock.Anything, "Alice", "alice@example.com", mock.MatchedBy(func(hash string) bool {
		return hash != "" && hash != "secret-password"
	}), mock.Anything).Return(Investor{ID: 1, Email: "alice@example.com"}, nil)

	inv, err := service.Register(context.Background(), "Alice", "  Alice@Example.com ", "secret-password")

	require.NoError(t, err)
	require.Equal(t, "alice@example.com", inv.Email)
	repo.AssertExpectations(t)
}

func TestInvestorService_Register_ShortPassword(t *testing.T) {
	repo := new(mockInvestorRepository)
	service := NewInvestorService(repo)

	_, err := service.Register(context.Background(), "Alice", "alice@example.com", "short")

	require.ErrorIs(t, err, ErrInvalidPassword)
	repo.AssertNotCalled(t, "CreateInvestor", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvestorService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockInvestorRepository)
	service := NewInvestorService(repo)

	repo.On("CreateInvestor", mock.Anything, "Alice", "alice@example.com", mock.Anything, mock.Anything).
		Return(Investor{}, &pgconn.PgError{Code: "23505"})

	_, err := service.Register(context.Background(), "Alice", "alice@example.com", "secret-password")

	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestInvestorService_IsVerified(t *testing.T) {
	repo := new(mockInvestorRepository)
	service := NewInvestorService(repo)

	now := time.Now()
	repo.On("GetInvestorByUUID", mock.Anything, "u-verified").Return(Investor{UUID: "u-verified", VerifiedAt: &now}, nil)
	repo.On("GetInvestorByUUID", mock.Anything, "u-fresh").Return(Investor{UUID: "u-fresh"}, nil)
	repo.On("GetInvestorByUUID", mock.Anything, "u-missing").Return(Investor{}, ErrInvestorNotFound)

	ok, err := service.IsVerified(context.Background(), "u-verified")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = service.IsVerified(context.Background(), "u-fresh")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = service.IsVerified(context.Background(), "u-missing")
	require.ErrorIs(t, err, ErrInvestorNotFound)
}
