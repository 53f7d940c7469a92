package service

import (
	"context"
	"testing"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

// plantOTP inserts an activation code with a known value for the user.
func plantOTP(t *testing.T, st store.Store, userID, code string, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, st.OTPs().CreateOTP(context.Background(), domain.UserOTP{
		ID:        idx.New().String(),
		UserID:    userID,
		Code:      code,
		IsActive:  true,
		ExpiresAt: expiresAt,
	}))
}

func TestVerifyOTPActivatesAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OTPService{Store: st, Tokens: newTokenService(t, st)}

	user := registerUser(t, st, "liam@example.com", "supersecret1")
	require.NoError(t, st.OTPs().DeactivateUserOTPs(ctx, user.ID))
	plantOTP(t, st, user.ID, "482913", time.Now().UTC().Add(10*time.Minute))

	result, err := svc.VerifyOTP(ctx, VerifyOTPInput{Email: "liam@example.com", OTP: "482913"})
	require.NoError(t, err)
	require.True(t, result.User.IsActive)
	require.NotEmpty(t, result.Token)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, stored.IsActive)
}

func TestVerifyOTPIsSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OTPService{Store: st, Tokens: newTokenService(t, st)}

	user := registerUser(t, st, "mia@example.com", "supersecret1")
	require.NoError(t, st.OTPs().DeactivateUserOTPs(ctx, user.ID))
	plantOTP(t, st, user.ID, "730184", time.Now().UTC().Add(10*time.Minute))

	_, err := svc.VerifyOTP(ctx, VerifyOTPInput{Email: "mia@example.com", OTP: "730184"})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, VerifyOTPInput{Email: "mia@example.com", OTP: "730184"})
	require.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPRejectsWrongAndExpiredCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OTPService{Store: st, Tokens: newTokenService(t, st)}

	user := registerUser(t, st, "noah@example.com", "supersecret1")
	require.NoError(t, st.OTPs().DeactivateUserOTPs(ctx, user.ID))

	t.Run("wrong code", func(t *testing.T) {
		plantOTP(t, st, user.ID, "111222", time.Now().UTC().Add(10*time.Minute))

		_, err := svc.VerifyOTP(ctx, VerifyOTPInput{Email: "noah@example.com", OTP: "999888"})
		require.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("expired code", func(t *testing.T) {
		plantOTP(t, st, user.ID, "333444", time.Now().UTC().Add(-time.Minute))

		_, err := svc.VerifyOTP(ctx, VerifyOTPInput{Email: "noah@example.com", OTP: "333444"})
		require.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.VerifyOTP(ctx, VerifyOTPInput{Email: "ghost@example.com", OTP: "123456"})
		require.ErrorIs(t, err, ErrInvalidOTP)
	})

	// The account never activated through any of the failed attempts.
	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, stored.IsActive)
}

func TestVerifyOTPValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &OTPService{Store: st, Tokens: newTokenService(t, st)}

	t.Run("missing email", func(t *testing.T) {
		_, err := svc.VerifyOTP(context.Background(), VerifyOTPInput{OTP: "123456"})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["email"], "Email is required")
	})

	t.Run("short code", func(t *testing.T) {
		_, err := svc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@b.com", OTP: "12"})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		require.Contains(t, fe["otp"], "OTP must be at least 6 characters")
	})
}
