package service

import (
	"context"
	"errors"

	"github.com/pquerna/otp/totp"

	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/slogx"
)

// ErrMFANotEnrolled is returned when a TOTP operation runs against a user
// without a provisioned secret.
var ErrMFANotEnrolled = errors.New("mfa not enrolled")

// ErrMFACodeInvalid is returned when a submitted TOTP code does not verify.
var ErrMFACodeInvalid = errors.New("invalid mfa code")

type MFAService struct {
	Store  store.Store
	Issuer string
}

// MFAEnrollment is the provisioning material handed to the user once.
type MFAEnrollment struct {
	Secret  string
	ProvURI string // otpauth:// URI for authenticator apps
}

// Enroll provisions a fresh TOTP secret for the user. Re-enrolling replaces
// the previous secret and clears confirmation.
func (s *MFAService) Enroll(ctx context.Context, userID string) (MFAEnrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return MFAEnrollment{}, err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return MFAEnrollment{}, err
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return MFAEnrollment{}, err
	}

	slogx.FromContext(ctx).Info("mfa enrolled", "user_id", userID)
	return MFAEnrollment{Secret: key.Secret(), ProvURI: key.URL()}, nil
}

// Confirm validates a first TOTP code against the enrolled secret and stamps
// the enrollment as confirmed.
func (s *MFAService) Confirm(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.MFASecret == nil {
		return ErrMFANotEnrolled
	}

	if !totp.Validate(code, *user.MFASecret) {
		return ErrMFACodeInvalid
	}

	if err := s.Store.Users().ConfirmMFA(ctx, userID); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("mfa confirmed", "user_id", userID)
	return nil
}

// Validate checks a TOTP code for a confirmed enrollment.
func (s *MFAService) Validate(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.MFASecret == nil || user.MFAConfirmed == nil {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return ErrMFACodeInvalid
	}
	return nil
}
