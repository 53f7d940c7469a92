package service

import (
	"context"
	"errors"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type OTPService struct {
	Store  store.Store
	Tokens *TokenService
}

type VerifyOTPInput struct {
	Email string
	OTP   string
}

// VerifyOTPResult carries the now-active user and a signed access token.
type VerifyOTPResult struct {
	User  domain.User
	Token string
}

// VerifyOTP consumes the activation code and activates the account. Consume
// and activate run in one transaction: the account only flips to active when
// a code was actually spent, and a code is only spent once.
func (s *OTPService) VerifyOTP(ctx context.Context, in VerifyOTPInput) (VerifyOTPResult, error) {
	log := slogx.FromContext(ctx)

	fe := FieldErrors{}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		fe.Add("email", "Email is required")
	}
	if len(in.OTP) < otpDigits {
		fe.Add("otp", "OTP must be at least 6 characters")
	}
	if len(fe) > 0 {
		return VerifyOTPResult{}, fe
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return VerifyOTPResult{}, ErrInvalidOTP
	} else if err != nil {
		return VerifyOTPResult{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		consumed, err := tx.OTPs().ConsumeOTP(ctx, user.ID, in.OTP)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrInvalidOTP
		}
		return tx.Users().ActivateUser(ctx, user.ID)
	})
	if err != nil {
		return VerifyOTPResult{}, err
	}

	user.IsActive = true

	token, err := s.Tokens.IssueAccessToken(ctx, user, []string{"otp"})
	if err != nil {
		return VerifyOTPResult{}, err
	}

	log.Info("account verified", "user_id", user.ID)
	return VerifyOTPResult{User: user, Token: token}, nil
}
