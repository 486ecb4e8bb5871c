package verify

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"flowledger/pkg/investors"
	"flowledger/pkg/sendemail"
)

var (
	ErrTooManyRequests = errors.New("too many verification requests, try again later")
	ErrCodeNotFound    = errors.New("no pending verification code for this email")
	ErrCodeExpired     = errors.New("verification code has expired")
	ErrCodeMismatch    = errors.New("invalid verification code")
)

// VerifyService runs the emailed-code flow that flips an investor to
// verified. The ledger consumes the resulting boolean through
// investors.InvestorService; nothing here touches ledger state.
type VerifyService interface {
	RequestCode(ctx context.Context, email string) error
	ConfirmCode(ctx context.Context, email, code string) error
}

type verifyService struct {
	repo         CodeRepository
	investorRepo investors.InvestorRepository
	es           sendemail.EmailService
}

func NewVerifyService(repo CodeRepository, investorRepo investors.InvestorRepository, es sendemail.EmailService) VerifyService {
	return &verifyService{repo: repo, investorRepo: investorRepo, es: es}
}

func (s *verifyService) RequestCode(ctx context.Context, email string) error {
	// The email must belong to a registered investor before we send
	// anything.
	if _, err := s.investorRepo.GetInvestorByEmail(ctx, email); err != nil {
		return err
	}

	count, err := s.repo.CountCodesInLastHour(ctx, email)
	if err != nil {
		return fmt.Errorf("count verification codes: %w", err)
	}
	if count >= 3 {
		return ErrTooManyRequests
	}

	code := generateCode(6)
	expiresAt := time.Now().Add(10 * time.Minute)

	if _, err := s.repo.CreateCode(ctx, email, code, expiresAt); err != nil {
		return fmt.Errorf("create verification code: %w", err)
	}

	subject := "Your verification code"
	plain := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	html := fmt.Sprintf("<p>Your verification code is <strong>%s</strong>. It expires in 10 minutes.</p>", code)
	if err := s.es.SendEmail(subject, email, plain, html); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	_ = s.repo.DeleteExpiredCodes(ctx)

	return nil
}

func (s *verifyService) ConfirmCode(ctx context.Context, email, code string) error {
	c, err := s.repo.GetLatestCodeByEmail(ctx, email)
	if err != nil {
		return ErrCodeNotFound
	}

	if time.Now().After(c.ExpiresAt) {
		return ErrCodeExpired
	}
	if c.Code != code {
		return ErrCodeMismatch
	}

	if err := s.repo.MarkCodeVerified(ctx, c.ID); err != nil {
		return fmt.Errorf("mark code verified: %w", err)
	}
	if err := s.investorRepo.MarkVerifiedByEmail(ctx, email, time.Now()); err != nil {
		return fmt.Errorf("mark investor verified: %w", err)
	}
	return nil
}

func generateCode(length int) string {
	digits := "0123456789"
	code := make([]byte, length)
	for i := range code {
		code[i] = digits[rand.Intn(len(digits))]
	}
	return string(code)
}
