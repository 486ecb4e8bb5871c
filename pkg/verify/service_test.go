package verify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flowledger/pkg/investors"
)

type mockCodeRepository struct {
	mock.Mock
}

func (m *mockCodeRepository) CreateCode(ctx context.Context, email, code string, expiresAt time.Time) (Code, error) {
	args := m.Called(ctx, email, code, expiresAt)
	c, _ := args.Get(0).(Code)
	return c, args.Error(1)
}

func (m *mockCodeRepository) GetLatestCodeByEmail(ctx context.Context, email string) (Code, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(Code)
	return c, args.Error(1)
}

func (m *mockCodeRepository) MarkCodeVerified(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCodeRepository) CountCodesInLastHour(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}

func (m *mockCodeRepository) DeleteExpiredCodes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockInvestorRepository struct {
	mock.Mock
}

func (m *mockInvestorRepository) CreateInvestor(ctx context.Context, name, email, passwordHash, uuid string) (investors.Investor, error) {
	args := m.Called(ctx, name, email, passwordHash, uuid)
	inv, _ := args.Get(0).(investors.Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepository) GetInvestorByUUID(ctx context.Context, uuid string) (investors.Investor, error) {
	args := m.Called(ctx, uuid)
	inv, _ := args.Get(0).(investors.Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepository) GetInvestorByEmail(ctx context.Context, email string) (investors.Investor, error) {
	args := m.Called(ctx, email)
	inv, _ := args.Get(0).(investors.Investor)
	return inv, args.Error(1)
}

func (m *mockInvestorRepository) MarkVerifiedByEmail(ctx context.Context, email string, ts time.Time) error {
	args := m.Called(ctx, email, ts)
	return args.Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendEmail(subject, toEmail, plainTextContent, htmlContent string) error {
	args := m.Called(subject, toEmail, plainTextContent, htmlContent)
	return args.Error(0)
}

func TestVerifyService_RequestCode_SendsEmail(t *testing.T) {
	repo := new(mockCodeRepository)
	invRepo := new(mockInvestorRepository)
	es := new(mockEmailService)
	service := NewVerifyService(repo, invRepo, es)

	invRepo.On("GetInvestorByEmail", mock.Anything, "a@example.com").Return(investors.Investor{Email: "a@example.com"}, nil)
	repo.On("CountCodesInLastHour", mock.Anything, "a@example.com").Return(0, nil)
	repo.On("CreateCode", mock.Anything, "a@example.com", mock.Anything, mock.Anything).Return(Code{ID: 1}, nil)
	es.On("SendEmail", mock.Anything, "a@example.com", mock.Anything, mock.Anything).Return(nil)
	repo.On("DeleteExpiredCodes", mock.Anything).Return(nil)

	err := service.RequestCode(context.Background(), "a@example.com")

	require.NoError(t, err)
	repo.AssertExpectations(t)
	es.AssertExpectations(t)
}

func TestVerifyService_RequestCode_RateLimited(t *testing.T) {
	repo := new(mockCodeRepository)
	invRepo := new(mockInvestorRepository)
	es := new(mockEmailService)
	service := NewVerifyService(repo, invRepo, es)

	invRepo.On("GetInvestorByEmail", mock.Anything, "a@example.com").Return(investors.Investor{Email: "a@example.com"}, nil)
	repo.On("CountCodesInLastHour", mock.Anything, "a@example.com").Return(3, nil)

	err := service.RequestCode(context.Background(), "a@example.com")

	require.ErrorIs(t, err, ErrTooManyRequests)
	es.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyService_RequestCode_UnknownInvestor(t *testing.T) {
	repo := new(mockCodeRepository)
	invRepo := new(mockInvestorRepository)
	es := new(mockEmailService)
	service := NewVerifyService(repo, invRepo, es)

	invRepo.On("GetInvestorByEmail", mock.Anything, "ghost@example.com").Return(investors.Investor{}, investors.ErrInvestorNotFound)

	err := service.RequestCode(context.Background(), "ghost@example.com")

	require.ErrorIs(t, err, investors.ErrInvestorNotFound)
}

func TestVerifyService_ConfirmCode_MarksInvestorVerified(t *testing.T) {
	repo := new(mockCodeRepository)
	invRepo := new(mockInvestorRepository)
	service := NewVerifyService(repo, invRepo, new(mockEmailService))

	repo.On("GetLatestCodeByEmail", mock.Anything, "a@example.com").Return(Code{
		ID:        7,
		Email:     "a@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil)
	repo.On("MarkCodeVerified", mock.Anything, int64(7)).Return(nil)
	invRepo.On("MarkVerifiedByEmail", mock.Anything, "a@example.com", mock.Anything).Return(nil)

	err := service.ConfirmCode(context.Background(), "a@example.com", "123456")

	require.NoError(t, err)
	repo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
}

func TestVerifyService_ConfirmCode_WrongOrExpired(t *testing.T) {
	repo := new(mockCodeRepository)
	invRepo := new(mockInvestorRepository)
	service := NewVerifyService(repo, invRepo, new(mockEmailService))

	repo.On("GetLatestCodeByEmail", mock.Anything, "expired@example.com").Return(Code{
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	repo.On("GetLatestCodeByEmail", mock.Anything, "wrong@example.com").Return(Code{
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil)

	require.ErrorIs(t, service.ConfirmCode(context.Background(), "expired@example.com", "123456"), ErrCodeExpired)
	require.ErrorIs(t, service.ConfirmCode(context.Background(), "wrong@example.com", "654321"), ErrCodeMismatch)
	invRepo.AssertNotCalled(t, "MarkVerifiedByEmail", mock.Anything, mock.Anything, mock.Anything)
}
