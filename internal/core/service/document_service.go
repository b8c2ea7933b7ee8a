package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// DocumentService runs the OTP-gated document upload flow: a visitor verifies
// their email with a one-time code, then uploads identity documents. Uploads
// are broadcast so admin dashboards update live.
type DocumentService struct {
	docs        ports.DocumentRepository
	otps        ports.OTPStore
	mail        ports.MailQueue
	broadcaster ports.Broadcaster
	log         zerolog.Logger
}

func NewDocumentService(
	docs ports.DocumentRepository,
	otps ports.OTPStore,
	mail ports.MailQueue,
	broadcaster ports.Broadcaster,
	log zerolog.Logger,
) *DocumentService {
	return &DocumentService{docs: docs, otps: otps, mail: mail, broadcaster: broadcaster, log: log}
}

func (s *DocumentService) SendOTP(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrValidation
	}

	code, err := sixDigitCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	if err := s.otps.Put(ctx, email, code); err != nil {
		return err
	}

	s.mail.Enqueue(ports.Email{
		To:       email,
		Subject:  "Email Verification Code",
		TextBody: fmt.Sprintf("Your one-time verification code is %s. It is valid for 10 minutes.", code),
		HTMLBody: fmt.Sprintf(
			`<div style="font-family: Arial, sans-serif;"><h2>Email Verification</h2><p>Your One-Time Password is:</p><h3>%s</h3><p>This code is valid for <strong>10 minutes</strong>. Do not share it with anyone.</p></div>`,
			code,
		),
	})
	return nil
}

func (s *DocumentService) VerifyOTP(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return domain.ErrValidation
	}

	stored, err := s.otps.Get(ctx, email)
	if err != nil {
		return err
	}
	if stored != code {
		return domain.ErrOTPInvalid
	}
	return s.otps.MarkVerified(ctx, email)
}

func (s *DocumentService) Upload(ctx context.Context, in ports.DocumentInput) (*domain.UserDocument, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, domain.ErrValidation
	}
	if in.Photo == "" || in.NationalID == "" || in.Signature == "" {
		return nil, domain.ErrValidation
	}

	verified, err := s.otps.IsVerified(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, domain.ErrEmailNotVerified
	}

	now := time.Now().UTC()
	doc, err := s.docs.UpsertByEmail(ctx, &domain.UserDocument{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		NationalID: in.NationalID,
		Photo:      in.Photo,
		Signature:  in.Signature,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(ports.Event{
		Name: "document-uploaded",
		Data: map[string]string{"name": doc.Name, "email": doc.Email},
	})
	return doc, nil
}

// sixDigitCode returns a uniformly random code in [100000, 999999].
func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
